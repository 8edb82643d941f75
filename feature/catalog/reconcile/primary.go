package reconcile

import (
	"context"
	"sort"

	"catalog-sync/core/reconcile"
	"catalog-sync/core/utils"
	"catalog-sync/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Primary reconciles the "on_main" feed: categories, marks, promotions,
// global parameters, delivery methods, search terms and misc flags.
type Primary struct {
	db      *gorm.DB
	fetcher Fetcher
	url     string
	logger  *zap.Logger
}

// NewPrimary creates the primary feed reconciler.
func NewPrimary(db *gorm.DB, fetcher Fetcher, url string, logger *zap.Logger) *Primary {
	return &Primary{db: db, fetcher: fetcher, url: url, logger: logger}
}

// Name identifies the primary feed in logs, metrics and reports.
func (p *Primary) Name() string { return "primary" }

// Run fetches the feed and applies it in one transaction. A fetch or decode
// failure returns before the store is touched.
func (p *Primary) Run(ctx context.Context) (reconcile.Stats, error) {
	var doc PrimaryDocument
	if err := p.fetcher.Fetch(ctx, p.Name(), p.url, &doc); err != nil {
		return nil, err
	}

	p.logger.Debug("Primary feed fetched",
		zap.Int("categories", len(doc.Categories)),
		zap.Int("marks", len(doc.ProductMarks)),
		zap.Int("delivery_methods", len(doc.ParametersJSON.DeliveryMethod.MethodsList)),
	)

	return reconcile.Apply(ctx, p.db, func(tx *reconcile.Tx) error {
		return ApplyPrimary(tx, &doc)
	})
}

// ApplyPrimary stages every record of doc in tx.
func ApplyPrimary(tx *reconcile.Tx, doc *PrimaryDocument) error {
	steps := []func(*reconcile.Tx, *PrimaryDocument) error{
		applyCategories,
		applyMarks,
		applyActions,
		applyBadges,
		applyGlobalParameters,
		applyDeliveryMethods,
		applyFastSearch,
		applyMiscFlags,
	}
	for _, step := range steps {
		if err := step(tx, doc); err != nil {
			return err
		}
	}
	return nil
}

func applyCategories(tx *reconcile.Tx, doc *PrimaryDocument) error {
	for i, c := range doc.Categories {
		if c.ID == nil {
			return reconcile.Missing("categories", i, "Category_ID")
		}
		_, err := reconcile.Upsert[models.Category](tx, "category_id", c.ID.Int(), reconcile.Fields{
			"category_name":  c.Name,
			"category_image": nullable(c.Image),
			"sort_order":     c.SortOrder.Int(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func applyMarks(tx *reconcile.Tx, doc *PrimaryDocument) error {
	for i, m := range doc.ProductMarks {
		if m.ID == nil {
			return reconcile.Missing("product_marks", i, "Mark_ID")
		}
		if _, err := reconcile.Upsert[models.ProductMark](tx, "mark_id", m.ID.Int(), reconcile.Fields{
			"mark_name": m.Name,
		}); err != nil {
			return err
		}
	}
	return nil
}

func applyActions(tx *reconcile.Tx, doc *PrimaryDocument) error {
	for i, a := range doc.Actions {
		if a.ID == nil {
			return reconcile.Missing("special_project_parameters_actions", i, "id")
		}
		_, err := reconcile.Upsert[models.PromotionalAction](tx, "id", a.ID.Int(), reconcile.Fields{
			"action_type":   a.ActionType,
			"description":   a.Description,
			"extra_field_1": a.ExtraField1,
			"extra_field_2": a.ExtraField2,
			"image_url":     a.ImageURL,
			"sort_order":    a.SortOrder.Int(),
			"url":           nullable(a.URL),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func applyBadges(tx *reconcile.Tx, doc *PrimaryDocument) error {
	for i, b := range doc.Badges {
		if b.ID == nil {
			return reconcile.Missing("special_project_parameters_badges", i, "id")
		}
		_, err := reconcile.Upsert[models.PromotionalBadge](tx, "id", b.ID.Int(), reconcile.Fields{
			"description": b.Description,
			"image_url":   b.ImageURL,
			"meaning_tag": nullable(b.MeaningTag),
			"sort_order":  b.SortOrder.Int(),
			"url":         b.URL,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func applyGlobalParameters(tx *reconcile.Tx, doc *PrimaryDocument) error {
	keys := make([]string, 0, len(doc.Parameters))
	for k := range doc.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := reconcile.Upsert[models.GlobalParameter](tx, "key", k, reconcile.Fields{
			"value": text(doc.Parameters[k]),
		}); err != nil {
			return err
		}
	}
	return nil
}

func applyDeliveryMethods(tx *reconcile.Tx, doc *PrimaryDocument) error {
	for i, m := range doc.ParametersJSON.DeliveryMethod.MethodsList {
		if m.Type == nil || *m.Type == "" {
			return reconcile.Missing("delivery_methods", i, "type")
		}
		if _, err := reconcile.Upsert[models.DeliveryMethod](tx, "type", *m.Type, reconcile.Fields{
			"name":        nullable(m.Name),
			"description": nullable(m.Description),
		}); err != nil {
			return err
		}

		method, err := reconcile.Find[models.DeliveryMethod](tx, "type", *m.Type)
		if err != nil {
			return err
		}

		// Addresses are only ever added; an existing point is left as is.
		for _, a := range m.AddrPoints {
			if _, err := reconcile.InsertIfAbsent[models.DeliveryAddress](tx, reconcile.Fields{
				"method_id": method.ID,
				"address":   nullable(a.Address),
				"name":      nullable(a.Name),
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyFastSearch(tx *reconcile.Tx, doc *PrimaryDocument) error {
	for _, v := range doc.ParametersJSON.FastSearchStrings.ParametersList {
		if _, err := reconcile.InsertIfAbsent[models.FastSearchTerm](tx, reconcile.Fields{"value": v}); err != nil {
			return err
		}
	}
	return nil
}

func applyMiscFlags(tx *reconcile.Tx, doc *PrimaryDocument) error {
	flags := []struct {
		name  string
		raw   []byte
		store bool
	}{
		{models.FlagGlobalReviews, doc.ParametersJSON.GlobalReviews, !utils.IsEmptyJSON(doc.ParametersJSON.GlobalReviews)},
		{models.FlagIsSideMenu, doc.ParametersJSON.IsSideMenu, true},
		{models.FlagStatus, doc.Status, true},
	}

	for _, f := range flags {
		if !f.store {
			continue
		}
		if _, err := reconcile.Upsert[models.MiscFlag](tx, "name", f.name, reconcile.Fields{
			"value": utils.JSONValue(f.raw),
		}); err != nil {
			return err
		}
	}
	return nil
}
