package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"catalog-sync/feature/catalog/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Count is the number of stored rows behind one overview label.
type Count struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// Overview is the ordered list of per-entity row counts.
type Overview []Count

// Text renders the overview as "Label: n" lines.
func (o Overview) Text() string {
	lines := make([]string, len(o))
	for i, c := range o {
		lines[i] = fmt.Sprintf("%s: %d", c.Label, c.Count)
	}
	return strings.Join(lines, "\n")
}

// Dump holds every catalog table as typed rows.
type Dump struct {
	Categories        []models.Category          `json:"Categories"`
	ProductMarks      []models.ProductMark       `json:"Product Marks"`
	Actions           []models.PromotionalAction `json:"Actions"`
	Badges            []models.PromotionalBadge  `json:"Badges"`
	ProjectParameters []models.GlobalParameter   `json:"Project Parameters"`
	DeliveryMethods   []models.DeliveryMethod    `json:"Delivery Methods"`
	DeliveryAddresses []models.DeliveryAddress   `json:"Delivery Addresses"`
	FastSearchParams  []models.FastSearchTerm    `json:"Fast Search Params"`
	AdditionalInfo    []models.MiscFlag          `json:"Additional Info"`
	Products          []models.Product           `json:"Product"`
	ProductCategories []models.ProductCategory   `json:"ProductCategories"`
	ProductImages     []models.ProductImage      `json:"ProductImage"`
	ProductParameters []models.ProductParameter  `json:"ProductParameter"`
}

// counter is one overview line and the query behind it.
type counter struct {
	label string
	model any
	flag  string
}

// overviewCounters is the fixed order of the overview.
var overviewCounters = []counter{
	{label: "Categories", model: &models.Category{}},
	{label: "Product Marks", model: &models.ProductMark{}},
	{label: "Actions", model: &models.PromotionalAction{}},
	{label: "Badges", model: &models.PromotionalBadge{}},
	{label: "Project Parameters", model: &models.GlobalParameter{}},
	{label: "Delivery Methods", model: &models.DeliveryMethod{}},
	{label: "Delivery Addresses", model: &models.DeliveryAddress{}},
	{label: "Fast Search Params", model: &models.FastSearchTerm{}},
	{label: "Additional: global_reviews", model: &models.MiscFlag{}, flag: models.FlagGlobalReviews},
	{label: "Additional: is_side_menu", model: &models.MiscFlag{}, flag: models.FlagIsSideMenu},
	{label: "Additional: status", model: &models.MiscFlag{}, flag: models.FlagStatus},
	{label: "Products", model: &models.Product{}},
}

const (
	overviewKey = "overview"
	dumpKey     = "dump"
)

// Service answers read queries over the catalog store.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	cache  *snapshotCache
}

// NewService creates a read service. Results are cached for ttl (0 disables).
func NewService(db *gorm.DB, logger *zap.Logger, ttl time.Duration) *Service {
	return &Service{
		db:     db,
		logger: logger,
		cache:  newSnapshotCache(ttl),
	}
}

// Overview returns the per-entity row counts.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	v, err := s.cache.get(ctx, overviewKey, func(ctx context.Context) (any, error) {
		return s.loadOverview(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(Overview), nil
}

// Dump returns every stored row.
func (s *Service) Dump(ctx context.Context) (*Dump, error) {
	v, err := s.cache.get(ctx, dumpKey, func(ctx context.Context) (any, error) {
		return s.loadDump(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dump), nil
}

// Schema compares the live tables with the models.
func (s *Service) Schema(ctx context.Context) (*SchemaReport, error) {
	return VerifySchema(s.db.WithContext(ctx))
}

// Invalidate drops cached snapshots. Called after every committed sync pass.
func (s *Service) Invalidate() {
	s.cache.invalidate()
	s.logger.Debug("Read snapshots invalidated")
}

func (s *Service) loadOverview(ctx context.Context) (Overview, error) {
	out := make(Overview, len(overviewCounters))
	g, gctx := errgroup.WithContext(ctx)

	for i, c := range overviewCounters {
		i, c := i, c
		out[i].Label = c.label
		g.Go(func() error {
			q := s.db.WithContext(gctx).Model(c.model)
			if c.flag != "" {
				q = q.Where("name = ?", c.flag)
			}
			if err := q.Count(&out[i].Count).Error; err != nil {
				return fmt.Errorf("count %s: %w", c.label, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) loadDump(ctx context.Context) (*Dump, error) {
	d := &Dump{}
	g, gctx := errgroup.WithContext(ctx)

	load := func(dest any, order string) {
		g.Go(func() error {
			if err := s.db.WithContext(gctx).Order(order).Find(dest).Error; err != nil {
				return fmt.Errorf("load %T: %w", dest, err)
			}
			return nil
		})
	}

	load(&d.Categories, "category_id")
	load(&d.ProductMarks, "mark_id")
	load(&d.Actions, "id")
	load(&d.Badges, "id")
	load(&d.ProjectParameters, "id")
	load(&d.DeliveryMethods, "id")
	load(&d.DeliveryAddresses, "id")
	load(&d.FastSearchParams, "id")
	load(&d.AdditionalInfo, "id")
	load(&d.Products, "product_id")
	load(&d.ProductCategories, "id")
	load(&d.ProductImages, "image_id")
	load(&d.ProductParameters, "parameter_id")

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}
