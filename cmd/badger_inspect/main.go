package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"tweet-lab/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	dbPath := flag.String("db", "", "Path to badger DB")
	collection := flag.String("collection", "Superbowl_post_game_tweets", "Collection to dump")
	flag.Parse()
	if *dbPath == "" {
		log.Fatal("-db is required")
	}

	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := repositories.NewBadgerTweetRepository(db, logs.GetLoggerFromString("ERROR"), *collection)
	records, err := repository.All()
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Date", "User", "Retweeted", "Hashtags", "Time zone", "Location", "Tweet"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, record := range records {
		table.Append([]string{
			record.Date,
			record.User,
			strconv.FormatBool(record.Retweeted),
			strings.Join(record.Hashtags, " "),
			lo.FromPtrOr(record.TimeZone, "null"),
			lo.FromPtrOr(record.Location, "null"),
			truncate(record.Tweet, 60),
		})
	}
	table.Render()
}

func truncate(text string, size int) string {
	runes := []rune(strings.ReplaceAll(text, "\n", " "))
	if len(runes) <= size {
		return string(runes)
	}
	return string(runes[:size]) + "…"
}
