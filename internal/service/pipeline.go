// Package service sequences the document QA stages: render, extract,
// embed, index, retrieve, generate, persist.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"docqa/internal/domain"
	"docqa/internal/embedding"
	"docqa/internal/extract"
	"docqa/internal/generator"
	"docqa/internal/index"
	"docqa/internal/retriever"
	"docqa/internal/summarizer"
)

// Deps carries the pipeline's collaborators. Embedder and Generator are
// shared read-only handles; one instance serves the whole batch and any
// follow-up questions.
type Deps struct {
	Opener     domain.DocumentOpener
	Extractor  *extract.Extractor
	Embedder   embedding.Embedder
	Generator  generator.Generator
	Summarizer *summarizer.FrequencySummarizer
	// Store may be nil; history is then disabled.
	Store           domain.AnswerStore
	TopK            int
	SummarySentence int
	// OutputDir for the answer JSON files; empty means next to the PDF.
	OutputDir string
	Logger    *log.Logger
}

// Pipeline runs the stages strictly in sequence, one document at a time.
type Pipeline struct {
	deps Deps
}

// Session holds the per-document artifacts that follow-up questions
// reuse: the sentence set and the retriever over its built index.
type Session struct {
	Document  domain.Document
	Sentences []string
	Summary   string
	Retriever *retriever.Retriever
	Record    domain.AnswerRecord
	// OutputPath is the answer JSON written for this document.
	OutputPath string
}

// New creates a pipeline. Opener, Extractor, Embedder and Generator are
// required; the rest have working defaults.
func New(deps Deps) *Pipeline {
	if deps.TopK <= 0 {
		deps.TopK = 5
	}
	if deps.SummarySentence <= 0 {
		deps.SummarySentence = 3
	}
	if deps.Summarizer == nil {
		deps.Summarizer = summarizer.NewFrequencySummarizer()
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	return &Pipeline{deps: deps}
}

// Run processes each document to completion before the next one starts.
// Validation failures are reported and skip only the failing document;
// any other error aborts the batch and is returned with the sessions
// completed so far.
func (p *Pipeline) Run(ctx context.Context, paths []string, query string) ([]*Session, error) {
	sessions := make([]*Session, 0, len(paths))
	for _, path := range paths {
		s, err := p.Process(ctx, path, query)
		if err != nil {
			if domain.IsValidation(err) {
				p.deps.Logger.Printf("skipping %s: %v", path, err)
				continue
			}
			return sessions, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// Process runs the full pipeline for one document and one question.
func (p *Pipeline) Process(ctx context.Context, path, query string) (*Session, error) {
	logger := p.deps.Logger
	doc := domain.Document{ID: uuid.NewString(), Path: path, Name: filepath.Base(path)}

	logger.Printf("%s: rendering pages", doc.Name)
	pages, err := p.deps.Opener.Open(path)
	if err != nil {
		return nil, err
	}
	defer pages.Close()

	logger.Printf("%s: extracting text from %d pages", doc.Name, pages.PageCount())
	text, err := p.deps.Extractor.Extract(ctx, pages)
	if err != nil {
		return nil, err
	}

	sentences := embedding.SplitSentences(text)
	if len(sentences) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoSentences, doc.Name)
	}
	logger.Printf("%s: embedding %d sentences", doc.Name, len(sentences))
	vectors, err := embedding.EmbedAll(p.deps.Embedder, sentences)
	if err != nil {
		return nil, err
	}

	logger.Printf("%s: building index", doc.Name)
	idx, err := index.Build(vectors)
	if err != nil {
		return nil, err
	}

	summary := p.deps.Summarizer.Summarize(sentences, p.deps.SummarySentence)
	ret := retriever.New(p.deps.Embedder, idx, sentences, p.deps.TopK)

	session := &Session{Document: doc, Sentences: sentences, Summary: summary, Retriever: ret}
	rec, _, err := p.Ask(ctx, session, query)
	if err != nil {
		return nil, err
	}
	session.Record = rec

	outPath, err := p.writeAnswer(rec, path)
	if err != nil {
		return nil, err
	}
	session.OutputPath = outPath
	logger.Printf("%s: answer written to %s", doc.Name, outPath)
	return session, nil
}

// Ask answers a question against an already processed document, reusing
// its index and embedder. Process routes the initial question through
// here too, so every answer takes the same path.
func (p *Pipeline) Ask(ctx context.Context, s *Session, query string) (domain.AnswerRecord, []domain.SearchResult, error) {
	results, err := s.Retriever.Retrieve(query)
	if err != nil {
		return domain.AnswerRecord{}, nil, err
	}
	contextSentences := make([]string, 0, len(results))
	for _, r := range results {
		contextSentences = append(contextSentences, r.Sentence.Text)
	}
	p.deps.Logger.Printf("%s: generating answer from %d context sentences", s.Document.Name, len(contextSentences))
	answer, err := p.deps.Generator.Generate(ctx, query, contextSentences)
	if err != nil {
		return domain.AnswerRecord{}, nil, err
	}
	rec := domain.AnswerRecord{
		ID:        uuid.NewString(),
		Document:  s.Document.Name,
		Question:  query,
		Answer:    answer,
		CreatedAt: time.Now(),
	}
	if p.deps.Store != nil {
		if err := p.deps.Store.Save(ctx, rec); err != nil {
			p.deps.Logger.Printf("%s: history save failed: %v", s.Document.Name, err)
		}
	}
	return rec, results, nil
}

// writeAnswer persists the question/answer pair as JSON with 4-space
// indentation, the pipeline's terminal artifact.
func (p *Pipeline) writeAnswer(rec domain.AnswerRecord, pdfPath string) (string, error) {
	out := struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}{rec.Question, rec.Answer}
	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return "", err
	}
	dir := p.deps.OutputDir
	if dir == "" {
		dir = filepath.Dir(pdfPath)
	}
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	path := filepath.Join(dir, base+".answer.json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write answer file: %w", err)
	}
	return path, nil
}
