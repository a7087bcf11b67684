package pipeline

import (
	"fmt"
	"log"

	"github.com/sjlee-dev/feedlens/internal/aggregate"
	"github.com/sjlee-dev/feedlens/internal/config"
	"github.com/sjlee-dev/feedlens/internal/database"
	"github.com/sjlee-dev/feedlens/internal/insight"
	"github.com/sjlee-dev/feedlens/internal/keywords"
	"github.com/sjlee-dev/feedlens/internal/lexicon"
	"github.com/sjlee-dev/feedlens/internal/model"
	"github.com/sjlee-dev/feedlens/internal/report"
	"github.com/sjlee-dev/feedlens/internal/sentiment"
)

// StepResult holds the result of a single pipeline step.
type StepResult struct {
	Name    string
	Summary string
	Err     error
}

// Result holds the results of a full pipeline run.
type Result struct {
	Kind     model.ReportKind
	ReportID int64
	Steps    []StepResult
}

// Pipeline orchestrates the 5-step analysis pipeline.
type Pipeline struct {
	cfg        *config.Config
	db         *database.DB
	classifier sentiment.Classifier
	extractor  *keywords.Extractor
	summarizer *insight.Summarizer
}

// New creates a new pipeline from the configured lexicon and thresholds.
func New(cfg *config.Config, db *database.DB) *Pipeline {
	lex := lexicon.New(cfg.Lexicon.Positive, cfg.Lexicon.Negative)
	return &Pipeline{
		cfg:        cfg,
		db:         db,
		classifier: sentiment.NewLexiconClassifier(lex),
		extractor:  keywords.NewExtractor(cfg.Keywords.StopTerms, cfg.Keywords.MinTokenLen),
		summarizer: insight.NewSummarizer(cfg.Analysis.TrendThreshold),
	}
}

// runState carries intermediate results between steps of one run.
type runState struct {
	feedback []model.FeedbackItem
	records  []model.PersonalRecord

	keywordHits      []model.KeywordHit
	sentimentBuckets []model.AggregateBucket
	timeBuckets      []model.AggregateBucket
	typeBuckets      []model.AggregateBucket
	categoryBuckets  []model.AggregateBucket
	ratingBuckets    []model.AggregateBucket
	insights         []model.Insight
}

// Run executes the full 5-step pipeline and stores the resulting report.
func (p *Pipeline) Run(kind model.ReportKind) *Result {
	r := &Result{Kind: kind}
	state := &runState{}

	// Step 1: Classify
	step := p.runClassify(state)
	r.Steps = append(r.Steps, step)
	if step.Err != nil {
		return r
	}

	// Step 2: Keywords
	step = p.runKeywords(state, kind)
	r.Steps = append(r.Steps, step)

	// Step 3: Aggregate
	step = p.runAggregate(state, kind)
	r.Steps = append(r.Steps, step)
	if step.Err != nil {
		return r
	}

	// Step 4: Summarize
	step = p.runSummarize(state)
	r.Steps = append(r.Steps, step)

	// Step 5: Compose
	step = p.runCompose(r, state, kind)
	r.Steps = append(r.Steps, step)

	return r
}

// DryRun shows what a run would process without executing.
func (p *Pipeline) DryRun(kind model.ReportKind) *Result {
	r := &Result{Kind: kind}

	unclassified, _ := p.db.GetUnclassifiedFeedback()
	r.Steps = append(r.Steps, StepResult{
		Name:    "Classify",
		Summary: fmt.Sprintf("[dry-run] %d feedback items need classification", len(unclassified)),
	})

	feedback, _ := p.db.GetAllFeedback()
	keywordSummary := fmt.Sprintf("[dry-run] would extract top %d keywords from %d items", p.cfg.Keywords.TopN, len(feedback))
	if kind == model.ReportRecords {
		keywordSummary = "[dry-run] would skip keywords (records report uses no feedback text)"
	}
	r.Steps = append(r.Steps, StepResult{
		Name:    "Keywords",
		Summary: keywordSummary,
	})

	records, _ := p.db.GetAllRecords()
	r.Steps = append(r.Steps, StepResult{
		Name:    "Aggregate",
		Summary: fmt.Sprintf("[dry-run] %d feedback items, %d records to aggregate", len(feedback), len(records)),
	})

	r.Steps = append(r.Steps, StepResult{
		Name:    "Summarize",
		Summary: "[dry-run] would summarize insights from the aggregates",
	})

	r.Steps = append(r.Steps, StepResult{
		Name:    "Compose",
		Summary: fmt.Sprintf("[dry-run] would compose a %s report", kind),
	})

	return r
}

func (p *Pipeline) runClassify(state *runState) StepResult {
	log.Println("Step 1/5: Classifying feedback...")

	pending, err := p.db.GetUnclassifiedFeedback()
	if err != nil {
		return StepResult{Name: "Classify", Err: err}
	}
	counts := make(map[model.Sentiment]int)
	for _, item := range pending {
		s := p.classifier.Classify(item.Text)
		if err := p.db.SetFeedbackSentiment(item.ID, s); err != nil {
			return StepResult{Name: "Classify", Err: err}
		}
		counts[s]++
	}

	state.feedback, err = p.db.GetAllFeedback()
	if err != nil {
		return StepResult{Name: "Classify", Err: err}
	}
	state.records, err = p.db.GetAllRecords()
	if err != nil {
		return StepResult{Name: "Classify", Err: err}
	}

	return StepResult{
		Name: "Classify",
		Summary: fmt.Sprintf("Classified %d items (%d positive, %d negative, %d neutral)",
			len(pending), counts[model.SentimentPositive], counts[model.SentimentNegative], counts[model.SentimentNeutral]),
	}
}

func (p *Pipeline) runKeywords(state *runState, kind model.ReportKind) StepResult {
	log.Println("Step 2/5: Extracting keywords...")

	// A records report draws nothing from feedback text; leaving keywords
	// empty keeps feedback topics out of its insights.
	if kind == model.ReportRecords {
		return StepResult{
			Name:    "Keywords",
			Summary: "Skipped (records report uses no feedback text)",
		}
	}

	texts := make([]string, len(state.feedback))
	for i, item := range state.feedback {
		texts[i] = item.Text
	}
	state.keywordHits = p.extractor.Extract(texts, p.cfg.Keywords.TopN)

	return StepResult{
		Name:    "Keywords",
		Summary: fmt.Sprintf("Extracted %d keywords from %d items", len(state.keywordHits), len(texts)),
	}
}

func (p *Pipeline) runAggregate(state *runState, kind model.ReportKind) StepResult {
	log.Println("Step 3/5: Aggregating...")

	g := aggregate.Granularity(p.cfg.Analysis.TimeGranularity)
	var err error

	if kind == model.ReportFeedback || kind == model.ReportCombined {
		state.sentimentBuckets, err = aggregate.Feedback(state.feedback, aggregate.BySentiment, g)
		if err != nil {
			return StepResult{Name: "Aggregate", Err: err}
		}
		state.timeBuckets, err = aggregate.Feedback(state.feedback, aggregate.ByTime, g)
		if err != nil {
			return StepResult{Name: "Aggregate", Err: err}
		}
	}

	if kind == model.ReportRecords || kind == model.ReportCombined {
		for _, agg := range []struct {
			dim  aggregate.Dimension
			dest *[]model.AggregateBucket
		}{
			{aggregate.ByType, &state.typeBuckets},
			{aggregate.ByCategory, &state.categoryBuckets},
			{aggregate.ByRating, &state.ratingBuckets},
		} {
			*agg.dest, err = aggregate.Records(state.records, agg.dim)
			if err != nil {
				return StepResult{Name: "Aggregate", Err: err}
			}
		}
	}

	total := len(state.sentimentBuckets) + len(state.timeBuckets) +
		len(state.typeBuckets) + len(state.categoryBuckets) + len(state.ratingBuckets)
	return StepResult{
		Name:    "Aggregate",
		Summary: fmt.Sprintf("Built %d buckets across dimensions", total),
	}
}

func (p *Pipeline) runSummarize(state *runState) StepResult {
	log.Println("Step 4/5: Summarizing insights...")

	state.insights = p.summarizer.Summarize(insight.Input{
		SentimentBuckets: state.sentimentBuckets,
		CategoryBuckets:  state.categoryBuckets,
		TimeBuckets:      state.timeBuckets,
		Keywords:         state.keywordHits,
	})

	return StepResult{
		Name:    "Summarize",
		Summary: fmt.Sprintf("Generated %d insights", len(state.insights)),
	}
}

func (p *Pipeline) runCompose(r *Result, state *runState, kind model.ReportKind) StepResult {
	log.Println("Step 5/5: Composing report...")

	doc := report.Assemble(report.Input{
		Insights:         state.insights,
		SentimentBuckets: state.sentimentBuckets,
		TimeBuckets:      state.timeBuckets,
		TypeBuckets:      state.typeBuckets,
		CategoryBuckets:  state.categoryBuckets,
		RatingBuckets:    state.ratingBuckets,
		Keywords:         state.keywordHits,
	}, kind)

	body := report.RenderMarkdown(doc)
	id, err := p.db.InsertStoredReport(kind, doc.Title, body)
	if err != nil {
		return StepResult{Name: "Compose", Err: err}
	}
	r.ReportID = id

	return StepResult{
		Name:    "Compose",
		Summary: fmt.Sprintf("Report #%d composed: %d sections", id, len(doc.Sections)),
	}
}
