// yt-warehouse pulls channel metadata from the YouTube Data API,
// stages it in MongoDB, propagates it into a MySQL warehouse and runs
// a fixed catalog of report queries over the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"yt-warehouse/pkg/feed"
	"yt-warehouse/pkg/reports"
	"yt-warehouse/pkg/staging"
	"yt-warehouse/pkg/warehouse"
	"yt-warehouse/pkg/youtube"
)

const maxChannels = 10

func main() {
	var (
		apiKey        = flag.String("api-key", os.Getenv("YOUTUBE_API_KEY"), "YouTube Data API key")
		mongoURI      = flag.String("mongo-uri", os.Getenv("MONGO_URI"), "MongoDB connection URI for the staging store")
		mongoDB       = flag.String("mongo-db", "yt_warehouse", "MongoDB database name")
		mysqlHost     = flag.String("mysql-host", "127.0.0.1:3306", "MySQL host or host:port")
		mysqlUser     = flag.String("mysql-user", "root", "MySQL user")
		mysqlPassword = flag.String("mysql-password", os.Getenv("MYSQL_PASSWORD"), "MySQL password")
		mysqlDB       = flag.String("mysql-db", "yt_warehouse", "MySQL database name")
		channels      = flag.String("channels", "", "comma-separated channel names to analyze (1-10)")
		selection     = flag.String("reports", "", `report numbers to run after propagation, e.g. "1,3,7", or "all"`)
		preview       = flag.String("preview", "", "channel id: print its recent uploads from the public feed and exit")
	)
	flag.Parse()

	ctx := context.Background()

	if *preview != "" {
		previewChannel(*preview)
		return
	}

	names := splitNames(*channels)
	if len(names) == 0 || len(names) > maxChannels {
		log.Fatalf("between 1 and %d channel names are required (-channels)", maxChannels)
	}

	client, err := youtube.NewClient(ctx, *apiKey)
	if err != nil {
		log.Fatalf("YouTube client: %v", err)
	}

	log.Printf("Analyzing %d channel(s)...", len(names))
	results := client.AnalyzeChannels(ctx, names)

	stagingClient, err := staging.NewClient(staging.Config{URI: *mongoURI, Database: *mongoDB})
	if err != nil {
		log.Fatalf("staging client: %v", err)
	}
	defer stagingClient.Close(ctx)
	if err := stagingClient.Connect(ctx); err != nil {
		log.Fatalf("staging connect: %v", err)
	}

	staging.Stage(ctx, stagingClient, results)

	warehouseClient := warehouse.NewClient(warehouse.Config{
		Host:     *mysqlHost,
		User:     *mysqlUser,
		Password: *mysqlPassword,
		Database: *mysqlDB,
	})
	if err := warehouseClient.Connect(ctx); err != nil {
		log.Fatalf("warehouse connect: %v", err)
	}
	defer warehouseClient.Close()

	propagator, err := warehouse.NewPropagator(stagingClient, warehouseClient.DB())
	if err != nil {
		log.Fatalf("propagator: %v", err)
	}
	if err := propagator.Propagate(ctx); err != nil {
		log.Fatalf("propagate: %v", err)
	}

	titles, err := selectTitles(*selection)
	if err != nil {
		log.Fatalf("reports: %v", err)
	}
	for _, result := range reports.Run(ctx, warehouseClient.DB(), titles) {
		renderResult(result)
	}
}

func previewChannel(channelID string) {
	uploads, err := feed.NewFetcher().RecentUploads(channelID)
	if err != nil {
		log.Fatalf("preview %s: %v", channelID, err)
	}
	for _, upload := range uploads {
		fmt.Printf("%s  %s  %s\n", upload.VideoID, upload.Published, upload.Title)
	}
}

func splitNames(channels string) []string {
	var names []string
	for _, name := range strings.Split(channels, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// selectTitles maps a "1,3,7" (or "all") selection to catalog titles.
func selectTitles(selection string) ([]string, error) {
	if selection == "" {
		return nil, nil
	}
	all := reports.Titles()
	if selection == "all" {
		return all, nil
	}

	var titles []string
	for _, field := range strings.Split(selection, ",") {
		field = strings.TrimSpace(field)
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 || n > len(all) {
			return nil, fmt.Errorf("invalid report number %q (valid: 1-%d)", field, len(all))
		}
		titles = append(titles, all[n-1])
	}
	return titles, nil
}

func renderResult(result reports.Result) {
	fmt.Printf("\n%s\n", result.Title)
	if result.Err != nil {
		fmt.Printf("  error: %v\n", result.Err)
		return
	}
	if len(result.Rows) == 0 {
		fmt.Println("  No results found for this query.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(result.Columns, "\t"))
	for _, row := range result.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}
