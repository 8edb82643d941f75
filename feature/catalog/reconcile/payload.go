package reconcile

import (
	"encoding/json"

	"catalog-sync/core/utils"

	"github.com/shopspring/decimal"
)

// PrimaryDocument is the "on_main" feed. Absent sections decode as empty.
type PrimaryDocument struct {
	Categories     []CategoryItem             `json:"categories"`
	ProductMarks   []MarkItem                 `json:"product_marks"`
	Actions        []ActionItem               `json:"special_project_parameters_actions"`
	Badges         []BadgeItem                `json:"special_project_parameters_badges"`
	Parameters     map[string]json.RawMessage `json:"special_project_parameters"`
	ParametersJSON ParametersJSON             `json:"special_project_parameters_json"`
	Status         json.RawMessage            `json:"status"`
}

// ParametersJSON is the nested settings object of the primary feed.
type ParametersJSON struct {
	DeliveryMethod struct {
		MethodsList []DeliveryMethodItem `json:"methods_list"`
	} `json:"delivery_method"`
	FastSearchStrings struct {
		ParametersList []string `json:"parameters_list"`
	} `json:"fast_search_strings"`
	GlobalReviews json.RawMessage `json:"global_reviews"`
	IsSideMenu    json.RawMessage `json:"is_side_menu"`
}

// CategoryItem is one entry of the primary feed's categories list.
type CategoryItem struct {
	ID        *utils.FlexInt `json:"Category_ID"`
	Name      string         `json:"Category_Name"`
	Image     *string        `json:"Category_Image"`
	SortOrder utils.FlexInt  `json:"sort_order"`
}

// MarkItem is one product mark.
type MarkItem struct {
	ID   *utils.FlexInt `json:"Mark_ID"`
	Name string         `json:"Mark_Name"`
}

// ActionItem is a promotional action, keyed by id.
type ActionItem struct {
	ID          *utils.FlexInt `json:"id"`
	ActionType  string         `json:"action_type"`
	Description string         `json:"description"`
	ExtraField1 string         `json:"extra_field_1"`
	ExtraField2 string         `json:"extra_field_2"`
	ImageURL    string         `json:"image_url"`
	SortOrder   utils.FlexInt  `json:"sort_order"`
	URL         *string        `json:"url"`
}

// BadgeItem is a promotional badge, keyed by id.
type BadgeItem struct {
	ID          *utils.FlexInt `json:"id"`
	Description string         `json:"description"`
	ImageURL    string         `json:"image_url"`
	MeaningTag  *string        `json:"meaning_tag"`
	SortOrder   utils.FlexInt  `json:"sort_order"`
	URL         string         `json:"url"`
}

// DeliveryMethodItem is a delivery method identified by its type, with its pickup points.
type DeliveryMethodItem struct {
	Type        *string            `json:"type"`
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	AddrPoints  []AddressPointItem `json:"addr_points"`
}

// AddressPointItem is one address of a delivery method.
type AddressPointItem struct {
	Address *string `json:"address"`
	Name    *string `json:"name"`
}

// SecondaryDocument is the full product feed.
type SecondaryDocument struct {
	Products []ProductItem `json:"products"`
}

// ProductItem is a full product record together with its child rows.
type ProductItem struct {
	ID            *utils.FlexInt  `json:"Product_ID"`
	Name          string          `json:"Product_Name"`
	CreatedAt     json.RawMessage `json:"Created_At"`
	UpdatedAt     json.RawMessage `json:"Updated_At"`
	OnMain        utils.FlexBool  `json:"OnMain"`
	Colors        json.RawMessage `json:"colors"`
	Excluded      json.RawMessage `json:"excluded"`
	Extras        json.RawMessage `json:"extras"`
	ImportanceNum *utils.FlexInt  `json:"importance_num"`
	Marks         json.RawMessage `json:"marks"`
	MoySklad      json.RawMessage `json:"moysklad_connector_products_data"`
	Reviews       json.RawMessage `json:"reviews"`
	ReviewsVideo  json.RawMessage `json:"reviews_video"`
	Tags          json.RawMessage `json:"tags"`

	Categories []ProductCategoryItem `json:"categories"`
	Images     []ImageItem           `json:"images"`
	Parameters []ParameterItem       `json:"parameters"`
}

// ProductCategoryItem links a product to a category id.
type ProductCategoryItem struct {
	ID *utils.FlexInt `json:"Category_ID"`
}

// ImageItem is a product image, keyed by Image_ID.
type ImageItem struct {
	ID        *utils.FlexInt  `json:"Image_ID"`
	URL       string          `json:"Image_URL"`
	MainImage utils.FlexBool  `json:"MainImage"`
	Position  json.RawMessage `json:"position"`
	SortOrder utils.FlexInt   `json:"sort_order"`
	Title     *string         `json:"title"`
}

// ParameterItem is a product variant with its price, keyed by Parameter_ID.
type ParameterItem struct {
	ID              *utils.FlexInt      `json:"Parameter_ID"`
	Chosen          *utils.FlexBool     `json:"chosen"`
	Disabled        *utils.FlexBool     `json:"disabled"`
	ExtraFieldColor json.RawMessage     `json:"extra_field_color"`
	ExtraFieldImage *string             `json:"extra_field_image"`
	Name            *string             `json:"name"`
	OldPrice        decimal.NullDecimal `json:"old_price"`
	ParameterString *string             `json:"parameter_string"`
	Price           decimal.Decimal     `json:"price"`
	SortOrder       utils.FlexInt       `json:"sort_order"`
}

// nullable turns a nil pointer into an untyped nil so it binds as SQL NULL.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullableInt(p *utils.FlexInt) any {
	if p == nil {
		return nil
	}
	return p.Int()
}

func nullableBool(p *utils.FlexBool) any {
	if p == nil {
		return nil
	}
	return p.Bool()
}

// text returns the opaque text form of raw, or nil.
func text(raw json.RawMessage) any {
	return nullable(utils.RawText(raw))
}

// textOrEmpty is text for NOT NULL string columns.
func textOrEmpty(raw json.RawMessage) string {
	if s := utils.RawText(raw); s != nil {
		return *s
	}
	return ""
}
