package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"go.uber.org/zap"
)

const patternMapping = `{
	"mappings": {
		"properties": {
			"title":            { "type": "text" },
			"description":      { "type": "text" },
			"image_url":        { "type": "keyword", "index": false },
			"purchase_link":    { "type": "keyword", "index": false },
			"original_price":   { "type": "scaled_float", "scaling_factor": 100 },
			"sale_price":       { "type": "scaled_float", "scaling_factor": 100 },
			"discount_percent": { "type": "integer" },
			"position":         { "type": "integer" }
		}
	}
}`

type Config struct {
	Addresses []string
	Username  string
	Password  string
	Index     string
}

func NewClient(cfg *Config) (*elasticsearch.Client, error) {
	return elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
}

type patternDocument struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	ImageURL        string  `json:"image_url"`
	PurchaseLink    string  `json:"purchase_link"`
	OriginalPrice   float64 `json:"original_price"`
	SalePrice       float64 `json:"sale_price"`
	DiscountPercent int64   `json:"discount_percent"`
	Position        int     `json:"position"`
}

// Indexer mirrors the catalog into Elasticsearch for storefront search
// tooling outside this service.
type Indexer struct {
	es     *elasticsearch.Client
	index  string
	logger logger.ZapLogger
}

func NewIndexer(es *elasticsearch.Client, index string, log logger.ZapLogger) *Indexer {
	return &Indexer{es: es, index: index, logger: log}
}

// EnsureIndex creates the index with its mapping. An existing index is fine.
func (i *Indexer) EnsureIndex(ctx context.Context) error {
	res, err := i.es.Indices.Create(i.index,
		i.es.Indices.Create.WithBody(strings.NewReader(patternMapping)),
		i.es.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		if res.StatusCode == http.StatusBadRequest && bytes.Contains(body, []byte("resource_already_exists_exception")) {
			return nil
		}
		return fmt.Errorf("create index %s: %s", i.index, res.Status())
	}
	return nil
}

// Sync indexes every product, keyed by product id. It keeps going after a
// failed document and reports how many failed.
func (i *Indexer) Sync(ctx context.Context, products []model.Product) error {
	failed := 0
	for pos, p := range products {
		if err := i.indexOne(ctx, pos, p); err != nil {
			failed++
			i.logger.Error("failed to index pattern", zap.Int64("product_id", p.ID), zap.Error(err))
		}
	}
	if failed > 0 {
		return fmt.Errorf("index %s: %d of %d patterns failed", i.index, failed, len(products))
	}
	i.logger.Info("Catalog indexed", zap.String("index", i.index), zap.Int("count", len(products)))
	return nil
}

func (i *Indexer) indexOne(ctx context.Context, pos int, p model.Product) error {
	doc := patternDocument{
		Title:           p.Title,
		Description:     p.Description,
		ImageURL:        p.ImageURL,
		PurchaseLink:    p.PurchaseLink,
		OriginalPrice:   p.OriginalPrice.InexactFloat64(),
		SalePrice:       p.SalePrice.InexactFloat64(),
		DiscountPercent: p.DiscountPercent(),
		Position:        pos,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	res, err := i.es.Index(i.index, bytes.NewReader(body),
		i.es.Index.WithDocumentID(strconv.FormatInt(p.ID, 10)),
		i.es.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index document: %s", res.Status())
	}
	return nil
}
