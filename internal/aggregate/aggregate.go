// Package aggregate groups personal records and classified feedback along a
// single dimension and computes per-bucket statistics.
//
// All grouping runs through one generic primitive, so every dimension shares
// the same partition guarantee: each input item lands in exactly one bucket,
// items with a missing grouping key land in an explicit "unspecified" bucket,
// and bucket counts always sum to the input size.
package aggregate

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sjlee-dev/feedlens/internal/model"
)

// Dimension names a grouping axis.
type Dimension string

const (
	ByType      Dimension = "type"
	ByCategory  Dimension = "category"
	ByRating    Dimension = "rating"
	BySentiment Dimension = "sentiment"
	ByTime      Dimension = "time"
)

// UnspecifiedKey is the bucket key for items with a missing grouping value.
const UnspecifiedKey = "unspecified"

// UnsupportedGroupingError reports a grouping dimension the aggregator does
// not support for the given entity kind. This is a configuration error, not
// a data error.
type UnsupportedGroupingError struct {
	Dimension Dimension
	Entity    string
}

func (e *UnsupportedGroupingError) Error() string {
	return fmt.Sprintf("unsupported grouping %q for %s", e.Dimension, e.Entity)
}

// InvalidRecordError reports a personal record whose rating is outside 1..5.
// Ratings are validated at the ingestion boundary; encountering one here
// means a caller bypassed that boundary.
type InvalidRecordError struct {
	ID     int64
	Rating int
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("record %d has rating %d outside 1..5", e.ID, e.Rating)
}

// groupBy partitions items into buckets keyed by keyFn. The returned order
// slice lists keys by first appearance, for callers that need insertion order.
func groupBy[T any](items []T, keyFn func(T) string) (map[string][]T, []string) {
	groups := make(map[string][]T)
	var order []string
	for _, item := range items {
		key := keyFn(item)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], item)
	}
	return groups, order
}

// Records aggregates personal records along dim. Supported dimensions:
// type, category, rating. Buckets carry count and mean rating; the mean is
// nil for rating-keyed buckets, where it is degenerate.
func Records(records []model.PersonalRecord, dim Dimension) ([]model.AggregateBucket, error) {
	for _, r := range records {
		if r.Rating < 1 || r.Rating > 5 {
			return nil, &InvalidRecordError{ID: r.ID, Rating: r.Rating}
		}
	}

	var keyFn func(model.PersonalRecord) string
	switch dim {
	case ByType:
		keyFn = func(r model.PersonalRecord) string { return orUnspecified(r.Type) }
	case ByCategory:
		keyFn = func(r model.PersonalRecord) string { return orUnspecified(r.Category) }
	case ByRating:
		keyFn = func(r model.PersonalRecord) string { return strconv.Itoa(r.Rating) }
	default:
		return nil, &UnsupportedGroupingError{Dimension: dim, Entity: "personal records"}
	}

	groups, _ := groupBy(records, keyFn)

	buckets := make([]model.AggregateBucket, 0, len(groups))
	for key, members := range groups {
		b := model.AggregateBucket{Key: key, Count: len(members)}
		if dim != ByRating {
			sum := 0
			for _, r := range members {
				sum += r.Rating
			}
			mean := float64(sum) / float64(len(members))
			b.MeanRating = &mean
		}
		buckets = append(buckets, b)
	}

	sortBuckets(buckets, dim)
	return buckets, nil
}

// Feedback aggregates classified feedback along dim. Supported dimensions:
// sentiment (count only) and time (chronological buckets at the given
// granularity, each carrying a sentiment breakdown).
func Feedback(items []model.FeedbackItem, dim Dimension, g Granularity) ([]model.AggregateBucket, error) {
	switch dim {
	case BySentiment:
		groups, _ := groupBy(items, func(f model.FeedbackItem) string {
			if f.Sentiment == model.SentimentUnset {
				return UnspecifiedKey
			}
			return string(f.Sentiment)
		})
		buckets := make([]model.AggregateBucket, 0, len(groups))
		for key, members := range groups {
			buckets = append(buckets, model.AggregateBucket{Key: key, Count: len(members)})
		}
		sortBuckets(buckets, dim)
		return buckets, nil

	case ByTime:
		if !g.valid() {
			return nil, fmt.Errorf("unknown time granularity %q", g)
		}
		groups, _ := groupBy(items, func(f model.FeedbackItem) string {
			return g.BucketKey(f.SubmittedAt)
		})
		buckets := make([]model.AggregateBucket, 0, len(groups))
		for key, members := range groups {
			breakdown := make(map[model.Sentiment]int)
			for _, f := range members {
				breakdown[f.Sentiment]++
			}
			buckets = append(buckets, model.AggregateBucket{
				Key:        key,
				Count:      len(members),
				Sentiments: breakdown,
			})
		}
		// Bucket keys are zero-padded date prefixes, so lexicographic
		// order is chronological order.
		slices.SortFunc(buckets, func(a, b model.AggregateBucket) int {
			return strings.Compare(a.Key, b.Key)
		})
		return buckets, nil

	default:
		return nil, &UnsupportedGroupingError{Dimension: dim, Entity: "feedback"}
	}
}

// sortBuckets orders buckets deterministically: rating buckets ascend by
// rating value, everything else descends by count with key ties ascending.
func sortBuckets(buckets []model.AggregateBucket, dim Dimension) {
	if dim == ByRating {
		slices.SortFunc(buckets, func(a, b model.AggregateBucket) int {
			ra, _ := strconv.Atoi(a.Key)
			rb, _ := strconv.Atoi(b.Key)
			return ra - rb
		})
		return
	}
	slices.SortFunc(buckets, func(a, b model.AggregateBucket) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Key, b.Key)
	})
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return UnspecifiedKey
	}
	return s
}
