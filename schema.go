package codforge

import "fmt"

// SchemaType is the JSON type of a schema node.
type SchemaType string

const (
	SchemaString  SchemaType = "string"
	SchemaInteger SchemaType = "integer"
	SchemaBoolean SchemaType = "boolean"
	SchemaArray   SchemaType = "array"
	SchemaObject  SchemaType = "object"
)

// Schema describes the expected JSON shape of a structured response.
// Providers that support constrained decoding translate it to their
// native schema format; the others rely on the key contract spelled
// out in the prompt text.
type Schema struct {
	Type        SchemaType
	Description string
	Enum        []string
	Items       *Schema
	Properties  map[string]*Schema
	Required    []string
}

// generationSchema is the response contract for a full page generation
// request. Field names match ContentDocument's JSON tags.
func generationSchema(locale LocaleConfig, featureCount, reviewCount int) *Schema {
	lang := locale.Name
	country := locale.CountryContext
	testimonialProps := map[string]*Schema{
		"name":   {Type: SchemaString, Description: fmt.Sprintf("A common, authentic first name native to %s.", country)},
		"title":  {Type: SchemaString, Description: fmt.Sprintf("Unique review title in %s.", lang)},
		"text":   {Type: SchemaString, Description: fmt.Sprintf("Review text in %s.", lang)},
		"role":   {Type: SchemaString},
		"rating": {Type: SchemaInteger, Description: "1-5, mostly 5."},
	}
	return &Schema{
		Type: SchemaObject,
		Properties: map[string]*Schema{
			"headline":        {Type: SchemaString, Description: fmt.Sprintf("H1 headline in %s.", lang)},
			"subheadline":     {Type: SchemaString, Description: fmt.Sprintf("H2 subheadline in %s.", lang)},
			"heroImagePrompt": {Type: SchemaString, Description: fmt.Sprintf("Image generation prompt set in %s with %s-specific visual cues.", country, country)},
			"benefits": {
				Type:        SchemaArray,
				Items:       &Schema{Type: SchemaString},
				Description: fmt.Sprintf("4 main benefits in %s.", lang),
			},
			"features": {
				Type: SchemaArray,
				Items: &Schema{
					Type: SchemaObject,
					Properties: map[string]*Schema{
						"title":       {Type: SchemaString},
						"description": {Type: SchemaString},
					},
				},
				Description: fmt.Sprintf("Exactly %d key features/paragraphs in %s.", featureCount, lang),
			},
			"testimonial": {
				Type: SchemaObject,
				Properties: map[string]*Schema{
					"name":  {Type: SchemaString, Description: fmt.Sprintf("A common, authentic first name native to %s.", country)},
					"title": {Type: SchemaString},
					"text":  {Type: SchemaString},
					"role":  {Type: SchemaString},
				},
			},
			"testimonials": {
				Type:        SchemaArray,
				Items:       &Schema{Type: SchemaObject, Properties: testimonialProps},
				Description: fmt.Sprintf("%d unique reviews in %s with culturally accurate names.", reviewCount, lang),
			},
			"ctaText":             {Type: SchemaString, Description: fmt.Sprintf("Button text (e.g. Order Now) in %s.", lang)},
			"ctaSubtext":          {Type: SchemaString, Description: fmt.Sprintf("Button subtext in %s.", lang)},
			"announcementBarText": {Type: SchemaString, Description: fmt.Sprintf("Top bar text (e.g. Free Shipping) in %s.", lang)},
			"colorScheme":         {Type: SchemaString, Enum: []string{"blue", "green", "red", "purple", "dark", "gold"}},
			"boxContent": {
				Type: SchemaObject,
				Properties: map[string]*Schema{
					"enabled": {Type: SchemaBoolean},
					"title":   {Type: SchemaString},
					"items":   {Type: SchemaArray, Items: &Schema{Type: SchemaString}},
				},
			},
		},
		Required: []string{"headline", "subheadline", "benefits", "features", "ctaText", "colorScheme", "testimonial", "testimonials"},
	}
}

// reviewsSchema is the response contract for a review regeneration
// request.
func reviewsSchema(locale LocaleConfig, count int) *Schema {
	return &Schema{
		Type: SchemaObject,
		Properties: map[string]*Schema{
			"testimonials": {
				Type: SchemaArray,
				Items: &Schema{
					Type: SchemaObject,
					Properties: map[string]*Schema{
						"name":   {Type: SchemaString, Description: fmt.Sprintf("A common, authentic first name native to %s.", locale.CountryContext)},
						"title":  {Type: SchemaString},
						"text":   {Type: SchemaString},
						"rating": {Type: SchemaInteger, Description: "1-5, mostly 5."},
					},
				},
				Description: fmt.Sprintf("Exactly %d unique reviews in %s.", count, locale.Name),
			},
		},
		Required: []string{"testimonials"},
	}
}
