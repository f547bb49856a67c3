package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	dmn "github.com/codebabbler/SemesterSaat/domain"
	"github.com/codebabbler/SemesterSaat/service/i"
	"github.com/jbrukh/bayesian"
)

const (
	// pendingFeedbackKey is the shared queue of feedback awaiting a retrain.
	pendingFeedbackKey = "classifier:pending_feedback"

	// minCategoryExamples is the smallest number of examples a category
	// needs before it is trained on.
	minCategoryExamples = 3

	defaultRetrainThreshold = 25
)

// ExpenseClassifierConfig holds the classifier's construction parameters.
type ExpenseClassifierConfig struct {
	Dataset          []LabeledNote  // base training corpus
	Repo             i.FeedbackRepo // persisted labeled feedback
	Queue            i.SortedQueue  // pending-feedback retrain queue
	RetrainThreshold int64          // pending count that triggers a retrain
	ModelPath        string         // where the trained model is persisted
	Logger           i.Logger
}

// ExpenseClassifier categorizes free-text expense notes with a TF-IDF
// naive-Bayes model and retrains it as labeled feedback accumulates. The
// model is rebuilt from the full corpus on retrain and swapped atomically;
// prediction holds only a read lock.
type ExpenseClassifier struct {
	mu      sync.RWMutex
	model   *bayesian.Classifier
	classes []bayesian.Class

	dataset   []LabeledNote
	repo      i.FeedbackRepo
	queue     i.SortedQueue
	threshold int64
	modelPath string
	logger    i.Logger
}

// NewExpenseClassifier creates an ExpenseClassifier, loading a previously
// persisted model when one exists at ModelPath and training from scratch
// otherwise.
func NewExpenseClassifier(ctx context.Context, cfg ExpenseClassifierConfig) (*ExpenseClassifier, error) {
	if len(cfg.Dataset) == 0 {
		return nil, errors.New("classifier requires a training dataset")
	}
	if cfg.Repo == nil || cfg.Queue == nil || cfg.Logger == nil {
		return nil, errors.New("classifier requires a feedback repo, a queue, and a logger")
	}
	if cfg.RetrainThreshold <= 0 {
		cfg.RetrainThreshold = defaultRetrainThreshold
	}

	c := &ExpenseClassifier{
		dataset:   cfg.Dataset,
		repo:      cfg.Repo,
		queue:     cfg.Queue,
		threshold: cfg.RetrainThreshold,
		modelPath: cfg.ModelPath,
		logger:    cfg.Logger,
	}

	if c.modelPath != "" {
		if err := c.loadModel(); err == nil {
			c.logger.Info(fmt.Sprintf("loaded classifier model from %s", c.modelPath))
			return c, nil
		} else if !os.IsNotExist(err) {
			c.logger.Warning(fmt.Sprintf("could not load persisted model, retraining: %v", err))
		}
	}

	if err := c.Retrain(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Predict returns the most likely category for the text and the model's
// posterior confidence in it.
func (c *ExpenseClassifier) Predict(text string) (string, float64, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return "", 0, errors.New("text contains no usable words")
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	scores, idx, _ := c.model.ProbScores(tokens)
	return string(c.classes[idx]), scores[idx], nil
}

// Feedback stores a labeled example and enqueues it for retraining. When the
// pending queue reaches the threshold it is drained and the model rebuilt;
// the queue's exclusive drain keeps concurrent replicas from retraining over
// each other.
func (c *ExpenseClassifier) Feedback(ctx context.Context, text, category string) error {
	fb, err := dmn.NewFeedback(text, category)
	if err != nil {
		return err
	}

	if err := c.repo.Save(ctx, fb); err != nil {
		return fmt.Errorf("saving feedback: %w", err)
	}

	if err := c.queue.Enqueue(ctx, pendingFeedbackKey, float64(fb.CreatedAt.UnixNano()), fb.ID.String()); err != nil {
		return fmt.Errorf("queueing feedback: %w", err)
	}

	if c.queue.Count(ctx, pendingFeedbackKey) < c.threshold {
		return nil
	}

	pending, err := c.queue.PopAll(ctx, pendingFeedbackKey)
	if err != nil {
		return fmt.Errorf("draining feedback queue: %w", err)
	}
	if len(pending) == 0 {
		// Another replica drained the queue and is retraining.
		return nil
	}

	c.logger.Info(fmt.Sprintf("retraining on %d pending feedback examples", len(pending)))
	return c.Retrain(ctx)
}

// Retrain rebuilds the model from the dataset plus all stored feedback and
// swaps it in.
func (c *ExpenseClassifier) Retrain(ctx context.Context) error {
	feedback, err := c.repo.All(ctx)
	if err != nil {
		return fmt.Errorf("loading stored feedback: %w", err)
	}

	corpus := make([]LabeledNote, 0, len(c.dataset)+len(feedback))
	corpus = append(corpus, c.dataset...)
	for _, fb := range feedback {
		corpus = append(corpus, LabeledNote{Text: fb.Text, Category: fb.Category})
	}

	model, classes, err := train(corpus)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.model = model
	c.classes = classes
	c.mu.Unlock()

	if c.modelPath != "" {
		if err := c.persistModel(model, classes); err != nil {
			c.logger.Warning(fmt.Sprintf("could not persist model: %v", err))
		}
	}

	c.logger.Info(fmt.Sprintf("classifier trained on %d examples across %d categories", len(corpus), len(classes)))
	return nil
}

// train builds a TF-IDF naive-Bayes model from the corpus, dropping
// categories with too few examples.
func train(corpus []LabeledNote) (*bayesian.Classifier, []bayesian.Class, error) {
	counts := make(map[string]int)
	for _, note := range corpus {
		counts[note.Category]++
	}

	names := make([]string, 0, len(counts))
	for category, n := range counts {
		if n >= minCategoryExamples {
			names = append(names, category)
		}
	}
	if len(names) < 2 {
		return nil, nil, fmt.Errorf("need at least 2 categories with %d+ examples, have %d", minCategoryExamples, len(names))
	}
	sort.Strings(names)

	classes := make([]bayesian.Class, len(names))
	index := make(map[string]bayesian.Class, len(names))
	for j, name := range names {
		classes[j] = bayesian.Class(name)
		index[name] = classes[j]
	}

	model := bayesian.NewClassifierTfIdf(classes...)
	for _, note := range corpus {
		class, kept := index[note.Category]
		if !kept {
			continue
		}
		tokens := tokenize(note.Text)
		if len(tokens) == 0 {
			continue
		}
		model.Learn(tokens, class)
	}
	model.ConvertTermsFreqToTfIdf()

	return model, classes, nil
}

// classesPath is the sidecar recording the trained class order, which the
// persisted model file does not carry in a form we re-read.
func (c *ExpenseClassifier) classesPath() string {
	return c.modelPath + ".classes.json"
}

func (c *ExpenseClassifier) persistModel(model *bayesian.Classifier, classes []bayesian.Class) error {
	if err := model.WriteToFile(c.modelPath); err != nil {
		return err
	}

	names := make([]string, len(classes))
	for j, class := range classes {
		names[j] = string(class)
	}
	encoded, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return os.WriteFile(c.classesPath(), encoded, 0o644)
}

func (c *ExpenseClassifier) loadModel() error {
	encoded, err := os.ReadFile(c.classesPath())
	if err != nil {
		return err
	}
	var names []string
	if err := json.Unmarshal(encoded, &names); err != nil {
		return fmt.Errorf("decoding class list: %w", err)
	}
	if len(names) < 2 {
		return errors.New("persisted class list is too short")
	}

	model, err := bayesian.NewClassifierFromFile(c.modelPath)
	if err != nil {
		return err
	}

	classes := make([]bayesian.Class, len(names))
	for j, name := range names {
		classes[j] = bayesian.Class(name)
	}

	c.mu.Lock()
	c.model = model
	c.classes = classes
	c.mu.Unlock()
	return nil
}

// Categories returns the trained category names in model order.
func (c *ExpenseClassifier) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, len(c.classes))
	for j, class := range c.classes {
		names[j] = string(class)
	}
	return names
}
