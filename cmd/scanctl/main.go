/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// scanctl runs a scan profile against a DynamoDB table and reports progress.
//
// Credentials and the table name come from the environment (optionally via a
// .env file): AWS_ACCESS_KEY, AWS_SECRET_KEY, AWS_REGION, AWS_DDB_TABLE.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/suparena/scanstore"
	"github.com/suparena/scanstore/datastore/ddb"
	"github.com/suparena/scanstore/profile"
	"github.com/suparena/scanstore/storagemodels"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")

	profilePath = flag.String("profile", "scan-profiles.yaml", "Path to the YAML profile document")
	profileName = flag.String("name", "", "Profile to run (required)")
	tableFlag   = flag.String("table", "", "Table name (overrides AWS_DDB_TABLE)")
	verbose     = flag.Bool("verbose", false, "Log every page of progress")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := scanstore.GetVersionInfo()
		fmt.Printf("ScanStore scanctl version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, proceeding with environment variables")
	}

	if *profileName == "" {
		log.Fatal("missing required -name flag")
	}

	table := *tableFlag
	if table == "" {
		table = os.Getenv("AWS_DDB_TABLE")
	}
	if table == "" {
		log.Fatal("no table: set -table or AWS_DDB_TABLE")
	}

	specs, err := profile.Load(*profilePath)
	if err != nil {
		log.WithError(err).Fatal("failed to load profiles")
	}
	spec, ok := specs[*profileName]
	if !ok {
		log.Fatalf("profile %q not found in %s", *profileName, *profilePath)
	}

	store, err := ddb.NewDynamodbScanStore[map[string]interface{}](
		os.Getenv("AWS_ACCESS_KEY"),
		os.Getenv("AWS_SECRET_KEY"),
		os.Getenv("AWS_REGION"),
		table,
	)
	if err != nil {
		log.WithError(err).Fatal("failed to create scan store")
	}

	ctx := context.Background()
	opts := []storagemodels.ScanOption{
		storagemodels.WithProgressHandler(func(p storagemodels.ScanProgress) {
			log.WithFields(logrus.Fields{
				"items":   p.ItemsProcessed,
				"scanned": p.ItemsScanned,
				"pages":   p.PagesProcessed,
				"rate":    fmt.Sprintf("%.1f/s", p.CurrentRate),
			}).Debug("scan progress")
		}),
	}

	var results <-chan storagemodels.ScanResult[map[string]interface{}]
	if spec.TotalSegments() != nil && spec.Segment() == nil {
		log.WithField("segments", *spec.TotalSegments()).Info("starting parallel scan")
		results = store.ParallelScan(ctx, spec, opts...)
	} else {
		log.Info("starting scan")
		results = store.Stream(ctx, spec, opts...)
	}

	var items, failures int64
	for result := range results {
		if result.Error != nil {
			failures++
			log.WithError(result.Error).Error("scan result error")
			continue
		}
		items++
	}

	log.WithFields(logrus.Fields{
		"table":    table,
		"profile":  *profileName,
		"items":    items,
		"failures": failures,
	}).Info("scan complete")

	if failures > 0 {
		os.Exit(1)
	}
}
