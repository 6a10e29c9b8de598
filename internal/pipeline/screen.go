// Package pipeline orchestrates resume screening: fetch, extract, parse, score and persist.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/config"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/fetch"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/ingestion"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/matching"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/parsing"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

// Step names reported through ProgressCallback.
const (
	StepFetch   = "fetch_resume"
	StepExtract = "extract_text"
	StepParse   = "parse_facts"
	StepScore   = "score_skills"
	StepPersist = "persist_screening"
)

// ProgressEvent represents a progress update during a screening run
type ProgressEvent struct {
	Step        string `json:"step"`
	Message     string `json:"message"`
	ScreeningID string `json:"screening_id,omitempty"`
	Content     any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Fetcher resolves a resume URL to its bytes.
type Fetcher interface {
	Document(ctx context.Context, url string) (*fetch.Result, error)
}

// Store persists finished screenings. Records are insert-only.
type Store interface {
	SaveScreening(ctx context.Context, s *types.Screening) error
}

// Screener runs the screening pipeline. It is safe for concurrent use.
type Screener struct {
	fetcher     Fetcher
	store       Store
	extractor   *parsing.Extractor
	matcher     *matching.Matcher
	logger      *zap.Logger
	onProgress  ProgressCallback
	concurrency int
	now         func() time.Time
}

// Option configures a Screener.
type Option func(*Screener)

// WithFetcher sets the client used for resume URLs.
func WithFetcher(f Fetcher) Option {
	return func(s *Screener) { s.fetcher = f }
}

// WithStore enables persistence of every screening.
func WithStore(store Store) Option {
	return func(s *Screener) { s.store = store }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Screener) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithProgress registers a progress callback.
func WithProgress(cb ProgressCallback) Option {
	return func(s *Screener) { s.onProgress = cb }
}

// WithConcurrency bounds the number of screenings ScreenBatch runs at once.
func WithConcurrency(n int) Option {
	return func(s *Screener) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithClock overrides the time source for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Screener) {
		if now != nil {
			s.now = now
		}
	}
}

// DefaultConcurrency is the ScreenBatch limit when none is configured.
const DefaultConcurrency = 4

// NewScreener builds a Screener from the screening policy.
func NewScreener(cfg config.ScreeningConfig, opts ...Option) *Screener {
	s := &Screener{
		extractor:   parsing.NewExtractor(cfg),
		matcher:     matching.NewMatcher(cfg),
		logger:      zap.NewNop(),
		concurrency: DefaultConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Screener) emit(step, screeningID, message string, content any) {
	if s.onProgress != nil {
		s.onProgress(ProgressEvent{
			Step:        step,
			Message:     message,
			ScreeningID: screeningID,
			Content:     content,
		})
	}
}

// Screen processes one application submission.
//
// Extraction failures never fail the call: the screening is recorded with
// sentinel facts and the failure kind as its extraction status. Only invalid
// requests, fetch failures and persistence failures are returned as errors.
func (s *Screener) Screen(ctx context.Context, req types.ScreeningRequest) (*types.Screening, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	log := s.logger.With(
		zap.String("screening_id", id.String()),
		zap.String("job_id", req.JobID),
		zap.String("candidate_id", req.CandidateID),
	)

	doc, err := s.resolveDocument(ctx, req)
	if err != nil {
		log.Warn("resume fetch failed", zap.String("url", req.ResumeURL), zap.Error(err))
		return nil, err
	}
	s.emit(StepFetch, id.String(), fmt.Sprintf("Loaded %d bytes", len(doc.Content)), nil)

	screening := &types.Screening{
		ID:               id,
		JobID:            req.JobID,
		CandidateID:      req.CandidateID,
		ResumeURL:        req.ResumeURL,
		DocumentHash:     ingestion.ComputeHash(doc.Content),
		ExtractionStatus: types.ExtractionOK,
		RequiredSkills:   append([]string{}, req.RequiredSkills...),
	}

	facts := types.EmptyCandidateFacts()
	text, err := ingestion.ExtractText(doc)
	if err != nil {
		kind := ingestion.KindOf(err)
		if kind == "" {
			kind = ingestion.KindCorruptDocument
		}
		screening.ExtractionStatus = string(kind)
		log.Warn("resume extraction failed, using fallback facts",
			zap.String("kind", string(kind)), zap.Error(err))
		s.emit(StepExtract, id.String(), "Extraction failed: "+string(kind), nil)
	} else {
		s.emit(StepExtract, id.String(), fmt.Sprintf("Extracted %d lines", len(text.Lines)), nil)
		facts = s.extractor.ExtractFacts(text)
		log.Debug("parsed candidate facts",
			zap.String("name", facts.Name),
			zap.Int("skills", len(facts.Skills)))
	}
	screening.Facts = facts.WithFallback(req.ApplicantName, req.ApplicantEmail)
	s.emit(StepParse, id.String(), "Parsed candidate facts", screening.Facts)

	screening.Match = s.matcher.Score(screening.Facts.Skills, req.RequiredSkills)
	screening.Status = types.StatusFor(screening.Match)
	screening.CreatedAt = s.now().UTC()
	s.emit(StepScore, id.String(),
		fmt.Sprintf("Matched %d%% of required skills", screening.Match.MatchPercentage), screening.Match)

	if s.store != nil {
		if err := s.store.SaveScreening(ctx, screening); err != nil {
			log.Error("failed to save screening", zap.Error(err))
			return nil, &PersistError{ScreeningID: id.String(), Cause: err}
		}
		s.emit(StepPersist, id.String(), "Saved screening", nil)
	}

	log.Info("screening complete",
		zap.String("extraction_status", screening.ExtractionStatus),
		zap.Int("match_percentage", screening.Match.MatchPercentage),
		zap.Bool("shortlisted", screening.Match.IsShortlisted))
	return screening, nil
}

func (s *Screener) resolveDocument(ctx context.Context, req types.ScreeningRequest) (types.RawDocument, error) {
	if req.Document != nil {
		doc := *req.Document
		if doc.MediaType == "" {
			doc.MediaType = req.MediaType
		}
		return doc, nil
	}

	if s.fetcher == nil {
		return types.RawDocument{}, &FetchError{URL: req.ResumeURL, Cause: errors.New("no fetcher configured")}
	}
	res, err := s.fetcher.Document(ctx, req.ResumeURL)
	if err != nil {
		return types.RawDocument{}, &FetchError{URL: req.ResumeURL, Cause: err}
	}

	mediaType := req.MediaType
	if mediaType == "" {
		mediaType = res.ContentType
	}
	return types.RawDocument{
		Content:   res.Body,
		MediaType: mediaType,
		Filename:  filenameFromURL(req.ResumeURL),
	}, nil
}

func filenameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return ""
	}
	return path.Base(u.Path)
}
