package results

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/fadedpez/basicstrategy/internal/logging"
	"github.com/fadedpez/basicstrategy/pkg/entities"
)

const answerMapping = `{
	"mappings": {
		"properties": {
			"id": { "type": "keyword" },
			"session_id": { "type": "keyword" },
			"player_id": { "type": "keyword" },
			"player_hand": { "type": "keyword" },
			"dealer_card": { "type": "keyword" },
			"table_index": { "type": "keyword" },
			"table_type": { "type": "keyword" },
			"expected": { "type": "keyword" },
			"guess": { "type": "keyword" },
			"correct": { "type": "boolean" },
			"answered_at": { "type": "date" }
		}
	}
}`

// ElasticsearchConfig holds connection options for the answer mirror
type ElasticsearchConfig struct {
	URL      string
	Username string
	Password string
	Index    string
	// Transport overrides the HTTP transport, mostly for tests
	Transport http.RoundTripper
}

// ElasticsearchRepository mirrors answers into an Elasticsearch index for
// dashboards. Reads are served by the base repository, which stays the
// source of truth; mirror failures are logged and never fail a write.
type ElasticsearchRepository struct {
	baseRepo Repository
	client   *elasticsearch.Client
	index    string
	logger   *log.Logger
}

// NewElasticsearchRepository wraps baseRepo and makes sure the index exists
func NewElasticsearchRepository(ctx context.Context, baseRepo Repository, config *ElasticsearchConfig, logger *log.Logger) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
		Transport: config.Transport,
	}

	// Add authentication if provided
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	index := config.Index
	if index == "" {
		index = "basicstrategy"
	}
	if logger == nil {
		logger = log.Default()
	}

	repo := &ElasticsearchRepository{
		baseRepo: baseRepo,
		client:   client,
		index:    index + "_answers",
		logger:   logger,
	}

	if err := repo.ensureIndex(ctx); err != nil {
		return nil, fmt.Errorf("error initializing index: %w", err)
	}
	return repo, nil
}

// IndexName returns the index answers are mirrored into
func (r *ElasticsearchRepository) IndexName() string {
	return r.index
}

func (r *ElasticsearchRepository) ensureIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.index}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error checking if answer index exists: %w", err)
	}
	res.Body.Close()

	if res.StatusCode != http.StatusNotFound {
		return nil
	}

	req := esapi.IndicesCreateRequest{
		Index: r.index,
		Body:  bytes.NewReader([]byte(answerMapping)),
	}
	createRes, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error creating answer index: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("error creating answer index: %s", createRes.String())
	}
	return nil
}

// SaveAnswer stores the answer in the base repository, then mirrors it
func (r *ElasticsearchRepository) SaveAnswer(ctx context.Context, record *entities.AnswerRecord) error {
	if err := r.baseRepo.SaveAnswer(ctx, record); err != nil {
		return err
	}

	if err := r.indexAnswer(ctx, record); err != nil {
		logging.LogError(r.logger, "Failed to mirror answer", err, "answer_id", record.ID)
	}
	return nil
}

func (r *ElasticsearchRepository) indexAnswer(ctx context.Context, record *entities.AnswerRecord) error {
	doc := *record
	doc.AnsweredAt = doc.AnsweredAt.UTC()
	jsonData, err := json.Marshal(&doc)
	if err != nil {
		return err
	}

	res, err := r.client.Index(
		r.index,
		bytes.NewReader(jsonData),
		r.client.Index.WithDocumentID(record.ID),
		r.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("error indexing answer: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing answer: %s", res.String())
	}
	return nil
}

// GetSessionAnswers delegates to the base repository
func (r *ElasticsearchRepository) GetSessionAnswers(ctx context.Context, sessionID string) ([]*entities.AnswerRecord, error) {
	return r.baseRepo.GetSessionAnswers(ctx, sessionID)
}

// GetPlayerAnswers delegates to the base repository
func (r *ElasticsearchRepository) GetPlayerAnswers(ctx context.Context, playerID string, limit int) ([]*entities.AnswerRecord, error) {
	return r.baseRepo.GetPlayerAnswers(ctx, playerID, limit)
}

// GetCellStatistics delegates to the base repository
func (r *ElasticsearchRepository) GetCellStatistics(ctx context.Context, playerID string) ([]*entities.CellStatistics, error) {
	return r.baseRepo.GetCellStatistics(ctx, playerID)
}

// PruneAnswers prunes the base repository and then the mirror. The count
// reported is the base repository's.
func (r *ElasticsearchRepository) PruneAnswers(ctx context.Context, before time.Time) (int64, error) {
	pruned, err := r.baseRepo.PruneAnswers(ctx, before)
	if err != nil {
		return pruned, err
	}

	deleted, err := r.pruneMirror(ctx, before)
	if err != nil {
		logging.LogError(r.logger, "Failed to prune answer mirror", err)
		return pruned, nil
	}
	r.logger.Debug("Pruned answer mirror", "index", r.index, "deleted", deleted)
	return pruned, nil
}

func (r *ElasticsearchRepository) pruneMirror(ctx context.Context, before time.Time) (int64, error) {
	deleteQuery := fmt.Sprintf(`{
		"query": {
			"range": {
				"answered_at": { "lt": %q }
			}
		}
	}`, before.UTC().Format(time.RFC3339Nano))

	res, err := r.client.DeleteByQuery(
		[]string{r.index},
		bytes.NewReader([]byte(deleteQuery)),
		r.client.DeleteByQuery.WithContext(ctx),
	)
	if err != nil {
		return 0, fmt.Errorf("error deleting old answers: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, fmt.Errorf("error deleting old answers: %s", res.String())
	}

	var body struct {
		Deleted int64 `json:"deleted"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("error decoding delete response: %w", err)
	}
	return body.Deleted, nil
}

// Close closes the base repository
func (r *ElasticsearchRepository) Close() error {
	return r.baseRepo.Close()
}
