package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/sjlee-dev/feedlens/internal/config"
	"github.com/sjlee-dev/feedlens/internal/database"
	"github.com/sjlee-dev/feedlens/internal/ingest"
	"github.com/sjlee-dev/feedlens/internal/lexicon"
	"github.com/sjlee-dev/feedlens/internal/model"
	"github.com/sjlee-dev/feedlens/internal/pipeline"
	"github.com/sjlee-dev/feedlens/internal/report"
	"github.com/sjlee-dev/feedlens/internal/sentiment"
	"github.com/sjlee-dev/feedlens/internal/server"
)

var version = "dev"

var (
	verbose    bool
	configPath string
	cfg        *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "feedlens",
	Short:   "Feedback analysis and personal record tracking",
	Long:    "Feedlens classifies feedback text, extracts keywords, aggregates records, and composes markdown reports.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		} else {
			log.SetFlags(log.LstdFlags)
		}

		// Skip config loading for init and version
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}

		path, err := config.ResolveConfigPath(configPath)
		if err != nil {
			cfg = config.Default()
			return nil
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("feedlens", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration in ~/.config/feedlens/",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := filepath.Join(config.ConfigDir(), "config.yaml")
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("Config already exists: %s\n", target)
			return nil
		}

		if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		if err := os.WriteFile(target, config.DefaultConfigYAML, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Created config: %s\n", target)
		fmt.Println("Edit it to extend the lexicon, tune keywords, or set goals.")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database and goal status",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.GetStats()
		if err != nil {
			return fmt.Errorf("getting stats: %w", err)
		}

		month := time.Now().Format("2006-01")
		thisMonth, err := db.CountRecordsInMonth(month)
		if err != nil {
			return fmt.Errorf("counting records: %w", err)
		}

		fmt.Println("Feedback:")
		fmt.Printf("  Total items: %d\n", stats.FeedbackItems)
		fmt.Printf("  Classified: %d\n", stats.ClassifiedFeedback)
		fmt.Println("\nRecords:")
		fmt.Printf("  Total: %d\n", stats.PersonalRecords)
		goal := cfg.Goals.MonthlyRecords
		fmt.Printf("  This month (%s): %d/%d", month, thisMonth, goal)
		if thisMonth >= goal {
			fmt.Print("  goal reached!")
		}
		fmt.Println()
		fmt.Println("\nReports:")
		fmt.Printf("  Generated: %d\n", stats.Reports)
		return nil
	},
}

// --- import command ---

var importCmd = &cobra.Command{
	Use:   "import [file.csv]",
	Short: "Import feedback from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		lex := lexicon.New(cfg.Lexicon.Positive, cfg.Lexicon.Negative)
		imp := ingest.NewImporter(db, sentiment.NewLexiconClassifier(lex))

		result, err := imp.ImportFile(args[0])
		if err != nil {
			return err
		}

		fmt.Println("Import complete:")
		fmt.Printf("  Rows read: %d\n", result.TotalRows)
		fmt.Printf("  Imported: %d\n", result.Imported)
		fmt.Printf("  Skipped (empty): %d\n", result.Skipped)
		fmt.Printf("  Sentiment: %d positive, %d negative, %d neutral\n",
			result.Sentiments[model.SentimentPositive],
			result.Sentiments[model.SentimentNegative],
			result.Sentiments[model.SentimentNeutral])
		return nil
	},
}

// --- analyze command ---

var (
	dryRun      bool
	analyzeKind string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full pipeline: classify -> keywords -> aggregate -> summarize -> compose",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKind(analyzeKind)
		if err != nil {
			return err
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		pipe := pipeline.New(cfg, db)

		var result *pipeline.Result
		if dryRun {
			result = pipe.DryRun(kind)
		} else {
			result = pipe.Run(kind)
		}

		for i, step := range result.Steps {
			fmt.Printf("\nStep %d/%d: %s\n", i+1, len(result.Steps), step.Name)
			if step.Err != nil {
				fmt.Printf("  Error: %v\n", step.Err)
			} else {
				fmt.Printf("  %s\n", step.Summary)
			}
		}

		if !dryRun && result.ReportID != 0 {
			fmt.Printf("\nAnalysis complete! View report #%d with 'feedlens serve' or export it with 'feedlens report'.\n", result.ReportID)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without executing")
	analyzeCmd.Flags().StringVar(&analyzeKind, "kind", "combined", "Report kind: feedback, records, or combined")
}

// --- report command ---

var (
	reportKind string
	reportOut  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a report and write it to a markdown file",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKind(reportKind)
		if err != nil {
			return err
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		result := pipeline.New(cfg, db).Run(kind)
		for _, step := range result.Steps {
			if step.Err != nil {
				return fmt.Errorf("step %s: %w", step.Name, step.Err)
			}
		}

		stored, err := db.GetStoredReport(result.ReportID)
		if err != nil {
			return fmt.Errorf("loading report: %w", err)
		}

		out := reportOut
		if out == "" {
			out = report.Filename(kind)
		}
		if err := os.WriteFile(out, []byte(stored.BodyMarkdown), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}

		fmt.Printf("Report written to %s\n", out)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportKind, "kind", "combined", "Report kind: feedback, records, or combined")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "Output file path (default <kind>_report.md)")
}

// --- serve command ---

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		fmt.Printf("Starting server at http://localhost:%d\n", port)
		fmt.Println("Press Ctrl+C to stop")
		return server.Serve(db, port)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to run server on (default from config)")
}

// --- record command ---

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Manage personal records",
}

var (
	recordCategory string
	recordRating   int
	recordNote     string
	recordDate     string
	recordListType string
)

var recordAddCmd = &cobra.Command{
	Use:   "add [type] [title]",
	Short: "Add a personal record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		recordedAt := time.Now()
		if recordDate != "" {
			recordedAt, err = time.Parse("2006-01-02", recordDate)
			if err != nil {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", recordDate)
			}
		}

		id, err := db.InsertRecord(model.PersonalRecord{
			Type:       args[0],
			Title:      args[1],
			Category:   recordCategory,
			Rating:     recordRating,
			Note:       recordNote,
			RecordedAt: recordedAt,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added record [%d]: %s (%s, %d/5)\n", id, args[1], args[0], recordRating)
		return nil
	},
}

var recordListCmd = &cobra.Command{
	Use:   "list",
	Short: "List personal records",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		var records []model.PersonalRecord
		if recordListType != "" {
			records, err = db.GetRecordsByType(recordListType)
		} else {
			records, err = db.GetAllRecords()
		}
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("No records found. Add one with: feedlens record add")
			return nil
		}

		fmt.Println("Records:")
		fmt.Println()
		for _, r := range records {
			fmt.Printf("  [%d] %s  %s: %s (%d/5)", r.ID, r.RecordedAt.Format("2006-01-02"), r.Type, r.Title, r.Rating)
			if r.Category != "" {
				fmt.Printf("  #%s", r.Category)
			}
			fmt.Println()
			if r.Note != "" {
				note := r.Note
				if len(note) > 60 {
					note = note[:60] + "..."
				}
				fmt.Printf("        %s\n", note)
			}
		}
		return nil
	},
}

var recordRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a personal record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid record ID: %s", args[0])
		}

		rec, err := db.GetRecord(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("record %d not found", id)
		}

		if err := db.DeleteRecord(id); err != nil {
			return err
		}
		fmt.Printf("Removed record [%d]: %s\n", id, rec.Title)
		return nil
	},
}

func init() {
	recordAddCmd.Flags().StringVar(&recordCategory, "category", "", "Category tag")
	recordAddCmd.Flags().IntVar(&recordRating, "rating", 3, "Rating 1-5")
	recordAddCmd.Flags().StringVar(&recordNote, "note", "", "Free-form note")
	recordAddCmd.Flags().StringVar(&recordDate, "date", "", "Record date (YYYY-MM-DD, default today)")
	recordListCmd.Flags().StringVar(&recordListType, "type", "", "Filter by record type")

	recordCmd.AddCommand(recordAddCmd)
	recordCmd.AddCommand(recordListCmd)
	recordCmd.AddCommand(recordRemoveCmd)
}

func parseKind(s string) (model.ReportKind, error) {
	switch model.ReportKind(s) {
	case model.ReportFeedback, model.ReportRecords, model.ReportCombined:
		return model.ReportKind(s), nil
	}
	return "", fmt.Errorf("invalid report kind %q (want feedback, records, or combined)", s)
}

func openDB() (*database.DB, error) {
	dataDir := cfg.GetDataDir()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	dbPath := filepath.Join(dataDir, "feedlens.db")
	return database.Open(dbPath)
}
