package reconcile

import (
	"context"

	"catalog-sync/core/reconcile"
	"catalog-sync/core/utils"
	"catalog-sync/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Secondary reconciles the full product feed with its nested category links,
// images and parameters.
type Secondary struct {
	db      *gorm.DB
	fetcher Fetcher
	url     string
	logger  *zap.Logger
}

// NewSecondary creates the secondary feed reconciler.
func NewSecondary(db *gorm.DB, fetcher Fetcher, url string, logger *zap.Logger) *Secondary {
	return &Secondary{db: db, fetcher: fetcher, url: url, logger: logger}
}

// Name identifies the secondary feed in logs, metrics and reports.
func (s *Secondary) Name() string { return "secondary" }

// Run fetches the feed and applies it in one transaction.
func (s *Secondary) Run(ctx context.Context) (reconcile.Stats, error) {
	var doc SecondaryDocument
	if err := s.fetcher.Fetch(ctx, s.Name(), s.url, &doc); err != nil {
		return nil, err
	}

	s.logger.Debug("Secondary feed fetched", zap.Int("products", len(doc.Products)))

	return reconcile.Apply(ctx, s.db, func(tx *reconcile.Tx) error {
		return ApplySecondary(tx, &doc)
	})
}

// ApplySecondary stages every product of doc and its children in tx.
func ApplySecondary(tx *reconcile.Tx, doc *SecondaryDocument) error {
	for i := range doc.Products {
		p := &doc.Products[i]
		if p.ID == nil {
			return reconcile.Missing("products", i, "Product_ID")
		}
		pid := p.ID.Int()

		if _, err := reconcile.Upsert[models.Product](tx, "product_id", pid, productFields(p)); err != nil {
			return err
		}
		if err := applyProductCategories(tx, pid, p.Categories); err != nil {
			return err
		}
		if err := applyImages(tx, pid, p.Images); err != nil {
			return err
		}
		if err := applyParameters(tx, pid, p.Parameters); err != nil {
			return err
		}
	}
	return nil
}

func productFields(p *ProductItem) reconcile.Fields {
	return reconcile.Fields{
		"product_name":                     p.Name,
		"created_at":                       textOrEmpty(p.CreatedAt),
		"updated_at":                       text(p.UpdatedAt),
		"on_main":                          p.OnMain.Bool(),
		"colors":                           utils.JSONValue(p.Colors),
		"excluded":                         utils.JSONValue(p.Excluded),
		"extras":                           utils.JSONValue(p.Extras),
		"importance_num":                   nullableInt(p.ImportanceNum),
		"marks":                            utils.JSONValue(p.Marks),
		"moysklad_connector_products_data": text(p.MoySklad),
		"reviews":                          utils.JSONValue(p.Reviews),
		"reviews_video":                    utils.JSONValue(p.ReviewsVideo),
		"tags":                             utils.JSONValue(p.Tags),
	}
}

func applyProductCategories(tx *reconcile.Tx, productID int, links []ProductCategoryItem) error {
	for j, c := range links {
		if c.ID == nil {
			return reconcile.Missing("products_categories", j, "Category_ID")
		}
		if _, err := reconcile.InsertIfAbsent[models.ProductCategory](tx, reconcile.Fields{
			"product_id":  productID,
			"category_id": c.ID.Int(),
		}); err != nil {
			return err
		}
	}
	return nil
}

func applyImages(tx *reconcile.Tx, productID int, images []ImageItem) error {
	for j, img := range images {
		if img.ID == nil {
			return reconcile.Missing("product_images", j, "Image_ID")
		}
		if _, err := reconcile.Upsert[models.ProductImage](tx, "image_id", img.ID.Int(), reconcile.Fields{
			"image_url":  img.URL,
			"main_image": img.MainImage.Bool(),
			"product_id": productID,
			"position":   text(img.Position),
			"sort_order": img.SortOrder.Int(),
			"title":      nullable(img.Title),
		}); err != nil {
			return err
		}
	}
	return nil
}

func applyParameters(tx *reconcile.Tx, productID int, params []ParameterItem) error {
	for j, prm := range params {
		if prm.ID == nil {
			return reconcile.Missing("product_parameters", j, "Parameter_ID")
		}
		if _, err := reconcile.Upsert[models.ProductParameter](tx, "parameter_id", prm.ID.Int(), reconcile.Fields{
			"product_id":        productID,
			"chosen":            nullableBool(prm.Chosen),
			"disabled":          nullableBool(prm.Disabled),
			"extra_field_color": utils.JSONValue(prm.ExtraFieldColor),
			"extra_field_image": nullable(prm.ExtraFieldImage),
			"name":              nullable(prm.Name),
			"old_price":         prm.OldPrice,
			"parameter_string":  nullable(prm.ParameterString),
			"price":             prm.Price,
			"sort_order":        prm.SortOrder.Int(),
		}); err != nil {
			return err
		}
	}
	return nil
}
