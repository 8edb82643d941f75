package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Category is a product category, keyed by its upstream id.
type Category struct {
	CategoryID    int     `gorm:"column:category_id;primaryKey;autoIncrement:false" json:"category_id"`
	CategoryName  string  `gorm:"column:category_name;size:100" json:"category_name"`
	CategoryImage *string `gorm:"column:category_image;size:255" json:"category_image"`
	SortOrder     int     `gorm:"column:sort_order" json:"sort_order"`
}

func (Category) TableName() string { return "categories" }

// ProductMark is a label such as "new" or "hit".
type ProductMark struct {
	MarkID   int    `gorm:"column:mark_id;primaryKey;autoIncrement:false" json:"mark_id"`
	MarkName string `gorm:"column:mark_name;size:50" json:"mark_name"`
}

func (ProductMark) TableName() string { return "product_marks" }

// PromotionalAction is a promo banner from the primary feed.
type PromotionalAction struct {
	ID          int     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	ActionType  string  `gorm:"column:action_type;size:50" json:"action_type"`
	Description string  `gorm:"column:description;type:text" json:"description"`
	ExtraField1 string  `gorm:"column:extra_field_1;size:255" json:"extra_field_1"`
	ExtraField2 string  `gorm:"column:extra_field_2;size:255" json:"extra_field_2"`
	ImageURL    string  `gorm:"column:image_url;size:255" json:"image_url"`
	SortOrder   int     `gorm:"column:sort_order" json:"sort_order"`
	URL         *string `gorm:"column:url;size:255" json:"url"`
}

func (PromotionalAction) TableName() string { return "special_project_parameters_actions" }

// PromotionalBadge is a badge shown next to products.
type PromotionalBadge struct {
	ID          int     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Description string  `gorm:"column:description;type:text" json:"description"`
	ImageURL    string  `gorm:"column:image_url;size:255" json:"image_url"`
	MeaningTag  *string `gorm:"column:meaning_tag;size:50" json:"meaning_tag"`
	SortOrder   int     `gorm:"column:sort_order" json:"sort_order"`
	URL         string  `gorm:"column:url;size:255" json:"url"`
}

func (PromotionalBadge) TableName() string { return "special_project_parameters_badges" }

// GlobalParameter is one feed-level setting stored as opaque text.
type GlobalParameter struct {
	ID    uint    `gorm:"column:id;primaryKey" json:"id"`
	Key   string  `gorm:"column:key;size:100;uniqueIndex" json:"key"`
	Value *string `gorm:"column:value;type:text" json:"value"`
}

func (GlobalParameter) TableName() string { return "special_project_parameters" }

// DeliveryMethod is keyed by its business type (e.g. "courier").
type DeliveryMethod struct {
	ID          uint              `gorm:"column:id;primaryKey" json:"id"`
	Type        string            `gorm:"column:type;size:50;uniqueIndex" json:"type"`
	Name        *string           `gorm:"column:name;size:100" json:"name"`
	Description *string           `gorm:"column:description;type:text" json:"description"`
	Addresses   []DeliveryAddress `gorm:"foreignKey:MethodID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (DeliveryMethod) TableName() string { return "delivery_methods" }

// DeliveryAddress is a pickup point of a method, unique by (method, address, name).
type DeliveryAddress struct {
	ID       uint    `gorm:"column:id;primaryKey" json:"id"`
	MethodID uint    `gorm:"column:method_id;not null;uniqueIndex:idx_delivery_address_point" json:"method_id"`
	Address  *string `gorm:"column:address;size:255;uniqueIndex:idx_delivery_address_point" json:"address"`
	Name     *string `gorm:"column:name;size:100;uniqueIndex:idx_delivery_address_point" json:"name"`
}

func (DeliveryAddress) TableName() string { return "delivery_addresses" }

// FastSearchTerm is a suggested search string.
type FastSearchTerm struct {
	ID    uint   `gorm:"column:id;primaryKey" json:"id"`
	Value string `gorm:"column:value;size:100;uniqueIndex" json:"value"`
}

func (FastSearchTerm) TableName() string { return "fast_search_strings" }

// Well-known MiscFlag names.
const (
	FlagGlobalReviews = "global_reviews"
	FlagIsSideMenu    = "is_side_menu"
	FlagStatus        = "status"
)

// MiscFlag is a named JSON value that has no table of its own.
type MiscFlag struct {
	ID    uint           `gorm:"column:id;primaryKey" json:"id"`
	Name  string         `gorm:"column:name;size:50;uniqueIndex" json:"name"`
	Value datatypes.JSON `gorm:"column:value" json:"value"`
}

func (MiscFlag) TableName() string { return "additional_info" }

// Product is a catalog product from the secondary feed.
type Product struct {
	ProductID   int     `gorm:"column:product_id;primaryKey;autoIncrement:false" json:"product_id"`
	ProductName string  `gorm:"column:product_name;size:100" json:"product_name"`
	Created     string  `gorm:"column:created_at;size:50" json:"created_at"`
	Updated     *string `gorm:"column:updated_at;size:50" json:"updated_at"`
	OnMain      bool    `gorm:"column:on_main" json:"on_main"`

	Colors       datatypes.JSON `gorm:"column:colors" json:"colors"`
	Excluded     datatypes.JSON `gorm:"column:excluded" json:"excluded"`
	Extras       datatypes.JSON `gorm:"column:extras" json:"extras"`
	Marks        datatypes.JSON `gorm:"column:marks" json:"marks"`
	Reviews      datatypes.JSON `gorm:"column:reviews" json:"reviews"`
	ReviewsVideo datatypes.JSON `gorm:"column:reviews_video" json:"reviews_video"`
	Tags         datatypes.JSON `gorm:"column:tags" json:"tags"`

	ImportanceNum *int    `gorm:"column:importance_num" json:"importance_num"`
	MoySkladData  *string `gorm:"column:moysklad_connector_products_data;type:text" json:"moysklad_connector_products_data"`

	Categories []ProductCategory  `gorm:"foreignKey:ProductID;references:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Images     []ProductImage     `gorm:"foreignKey:ProductID;references:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Parameters []ProductParameter `gorm:"foreignKey:ProductID;references:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Product) TableName() string { return "products" }

// ProductCategory links a product to a category.
type ProductCategory struct {
	ID         uint      `gorm:"column:id;primaryKey" json:"id"`
	ProductID  int       `gorm:"column:product_id;not null;uniqueIndex:idx_product_category" json:"product_id"`
	CategoryID int       `gorm:"column:category_id;not null;uniqueIndex:idx_product_category" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (ProductCategory) TableName() string { return "products_categories" }

// ProductImage is one picture of a product.
type ProductImage struct {
	ImageID   int     `gorm:"column:image_id;primaryKey;autoIncrement:false" json:"image_id"`
	ImageURL  string  `gorm:"column:image_url;size:255" json:"image_url"`
	MainImage bool    `gorm:"column:main_image" json:"main_image"`
	ProductID int     `gorm:"column:product_id;index" json:"product_id"`
	Position  *string `gorm:"column:position;size:50" json:"position"`
	SortOrder int     `gorm:"column:sort_order" json:"sort_order"`
	Title     *string `gorm:"column:title;size:50" json:"title"`
}

func (ProductImage) TableName() string { return "product_images" }

// ProductParameter is a purchasable variant of a product (size, volume...).
type ProductParameter struct {
	ParameterID     int                 `gorm:"column:parameter_id;primaryKey;autoIncrement:false" json:"parameter_id"`
	ProductID       int                 `gorm:"column:product_id;index" json:"product_id"`
	Chosen          *bool               `gorm:"column:chosen" json:"chosen"`
	Disabled        *bool               `gorm:"column:disabled" json:"disabled"`
	ExtraFieldColor datatypes.JSON      `gorm:"column:extra_field_color" json:"extra_field_color"`
	ExtraFieldImage *string             `gorm:"column:extra_field_image;size:255" json:"extra_field_image"`
	Name            *string             `gorm:"column:name;size:50" json:"name"`
	OldPrice        decimal.NullDecimal `gorm:"column:old_price;type:decimal(12,2)" json:"old_price"`
	ParameterString *string             `gorm:"column:parameter_string;size:100" json:"parameter_string"`
	Price           decimal.Decimal     `gorm:"column:price;type:decimal(12,2)" json:"price"`
	SortOrder       int                 `gorm:"column:sort_order" json:"sort_order"`
}

func (ProductParameter) TableName() string { return "product_parameters" }

// All lists every model in migration order (parents before children).
func All() []any {
	return []any{
		&Category{},
		&ProductMark{},
		&PromotionalAction{},
		&PromotionalBadge{},
		&GlobalParameter{},
		&DeliveryMethod{},
		&DeliveryAddress{},
		&FastSearchTerm{},
		&MiscFlag{},
		&Product{},
		&ProductCategory{},
		&ProductImage{},
		&ProductParameter{},
	}
}
