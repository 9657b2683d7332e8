// Package reports exposes the fixed catalog of analytical queries over
// the warehouse tables. Queries are parameterless and read-only; the
// caller selects them by title.
package reports

import (
	"context"
	"database/sql"
	"fmt"
)

// Report pairs a catalog title with its SQL text.
type Report struct {
	Title string
	SQL   string
}

// Result is one executed report: the column header, the row values as
// rendered strings, or the error that query produced. Empty Rows with a
// nil Err means the query matched nothing.
type Result struct {
	Title   string
	Columns []string
	Rows    [][]string
	Err     error
}

// Catalog is the fixed menu of reports, in presentation order.
var Catalog = []Report{
	{
		Title: "1. What are the names of all the videos and their corresponding channels?",
		SQL: `SELECT a.channel_name, b.title AS video_names
			FROM channels a
			INNER JOIN videos b ON a.channel_id = b.channel_id`,
	},
	{
		Title: "2. Which channels have the most number of videos, and how many videos do they have?",
		SQL: `SELECT channel_name, video_count
			FROM channels
			WHERE video_count IN (SELECT MAX(video_count) FROM channels)`,
	},
	{
		Title: "3. What are the top 10 most viewed videos and their respective channels?",
		SQL: `SELECT a.channel_name, b.title, b.view_count
			FROM channels a
			INNER JOIN videos b ON a.channel_id = b.channel_id
			ORDER BY b.view_count DESC
			LIMIT 10`,
	},
	{
		Title: "4. How many comments were made on each video, and what are their corresponding video names?",
		SQL: `SELECT a.channel_name, b.video_id, b.title, b.comment_count
			FROM channels a
			INNER JOIN videos b ON a.channel_id = b.channel_id
			ORDER BY comment_count DESC`,
	},
	{
		Title: "5. Which videos have the highest number of likes, and what are their corresponding channel names?",
		SQL: `SELECT a.channel_name, b.title, b.like_count
			FROM channels a
			INNER JOIN videos b ON a.channel_id = b.channel_id
			ORDER BY b.like_count DESC
			LIMIT 10`,
	},
	{
		Title: "6. What is the total number of likes and dislikes for each video, and what are their corresponding video names?",
		SQL: `SELECT a.channel_name, b.title, like_count AS total_likes, b.dislike_count AS total_dislikes
			FROM channels a
			INNER JOIN videos b ON a.channel_id = b.channel_id
			ORDER BY b.like_count DESC`,
	},
	{
		Title: "7. What is the total number of views for each channel, and what are their corresponding channel names?",
		SQL: `SELECT a.channel_name, SUM(b.view_count) AS total_views
			FROM channels a
			INNER JOIN videos b ON a.channel_id = b.channel_id
			GROUP BY a.channel_name`,
	},
	{
		Title: "8. What are the names of all the channels that have published videos in the year 2022?",
		SQL: `SELECT a.channel_name, b.title, DATE(b.published_at)
			FROM channels a
			INNER JOIN videos b ON a.channel_id = b.channel_id
			WHERE YEAR(published_at) = 2022`,
	},
	{
		Title: "9. What is the average duration of all videos in each channel, and what are their corresponding channel names?",
		SQL: `SELECT a.channel_name, AVG(TIME_TO_SEC(duration)) AS avg_duration_seconds
			FROM channels a
			INNER JOIN videos b ON a.channel_id = b.channel_id
			GROUP BY a.channel_name`,
	},
	{
		Title: "10. Which videos have the highest number of comments, and what are their corresponding channel names?",
		SQL: `SELECT a.channel_name, b.title, b.comment_count
			FROM channels a
			INNER JOIN videos b ON a.channel_id = b.channel_id
			ORDER BY comment_count DESC
			LIMIT 10`,
	},
	{
		Title: "11. To view CHANNELS TABLE",
		SQL:   `SELECT * FROM channels`,
	},
	{
		Title: "12. To view VIDEOS TABLE",
		SQL:   `SELECT * FROM videos`,
	},
	{
		Title: "13. To view PLAYLISTS TABLE",
		SQL:   `SELECT * FROM playlists`,
	},
	{
		Title: "14. To view COMMENTS TABLE",
		SQL:   `SELECT * FROM comments`,
	},
}

// Titles returns every catalog title in presentation order.
func Titles() []string {
	titles := make([]string, len(Catalog))
	for i, report := range Catalog {
		titles[i] = report.Title
	}
	return titles
}

func lookup(title string) (Report, bool) {
	for _, report := range Catalog {
		if report.Title == title {
			return report, true
		}
	}
	return Report{}, false
}

// Run executes the selected reports independently. A failing query
// yields a Result carrying its error; it does not stop the rest of the
// selection.
func Run(ctx context.Context, db *sql.DB, titles []string) []Result {
	results := make([]Result, 0, len(titles))
	for _, title := range titles {
		report, ok := lookup(title)
		if !ok {
			results = append(results, Result{Title: title, Err: fmt.Errorf("unknown report %q", title)})
			continue
		}
		results = append(results, runOne(ctx, db, report))
	}
	return results
}

func runOne(ctx context.Context, db *sql.DB, report Report) Result {
	result := Result{Title: report.Title}

	rows, err := db.QueryContext(ctx, report.SQL)
	if err != nil {
		result.Err = fmt.Errorf("run report: %w", err)
		return result
	}
	defer rows.Close()

	result.Columns, err = rows.Columns()
	if err != nil {
		result.Err = fmt.Errorf("read columns: %w", err)
		return result
	}

	for rows.Next() {
		raw := make([]sql.RawBytes, len(result.Columns))
		dest := make([]interface{}, len(raw))
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			result.Err = fmt.Errorf("scan row: %w", err)
			return result
		}
		row := make([]string, len(raw))
		for i, cell := range raw {
			if cell == nil {
				row[i] = "NULL"
			} else {
				row[i] = string(cell)
			}
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		result.Err = fmt.Errorf("rows error: %w", err)
	}
	return result
}
