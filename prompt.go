package codforge

import (
	"fmt"
	"strings"
)

// buildGenerationPrompt assembles the copywriting instruction for one
// page generation request.
func buildGenerationPrompt(product ProductDetails, locale LocaleConfig, featureCount, reviewCount int) string {
	lang := locale.Name
	country := locale.CountryContext

	var b strings.Builder
	b.WriteString("You are a world-class expert copywriter specializing in high-conversion affiliate marketing landing pages.\n\n")
	b.WriteString("Create content for a product with the following details:\n")
	fmt.Fprintf(&b, "- Product Name: %s\n", product.Name)
	fmt.Fprintf(&b, "- Niche: %s\n", product.Niche)
	fmt.Fprintf(&b, "- Description: %s\n", product.Description)
	fmt.Fprintf(&b, "- Target Audience: %s\n", product.TargetAudience)
	fmt.Fprintf(&b, "- Tone: %s\n", product.Tone)
	fmt.Fprintf(&b, "- TARGET LANGUAGE: %s (STRICTLY ONLY %s)\n", lang, lang)
	fmt.Fprintf(&b, "- CURRENCY: %s (All prices must use this currency symbol)\n", locale.Currency)
	fmt.Fprintf(&b, "- TARGET COUNTRY CONTEXT: %s\n", country)
	fmt.Fprintf(&b, "- FEATURE COUNT: Exactly %d paragraphs/features.\n\n", featureCount)

	if len(product.Images) > 0 {
		b.WriteString("Use visual details from the attached images to enhance the copy.\n\n")
	}

	fmt.Fprintf(&b, "Produce a JSON object containing persuasive copy ENTIRELY in %s, with exactly these keys:\n", strings.ToUpper(lang))
	fmt.Fprintf(&b, "- \"headline\": H1 headline.\n")
	fmt.Fprintf(&b, "- \"subheadline\": H2 subheadline.\n")
	fmt.Fprintf(&b, "- \"heroImagePrompt\": image generation prompt for the hero shot.\n")
	fmt.Fprintf(&b, "- \"benefits\": array of 4 main benefit strings.\n")
	fmt.Fprintf(&b, "- \"features\": array of exactly %d objects with \"title\" and \"description\".\n", featureCount)
	fmt.Fprintf(&b, "- \"testimonial\": one review object with \"name\", \"title\", \"text\" and \"role\".\n")
	fmt.Fprintf(&b, "- \"testimonials\": array of %d review objects with \"name\", \"title\", \"text\", \"role\" and \"rating\" (1-5, mostly 5).\n", reviewCount)
	fmt.Fprintf(&b, "- \"ctaText\": button text (e.g. Order Now).\n")
	fmt.Fprintf(&b, "- \"ctaSubtext\": button subtext.\n")
	fmt.Fprintf(&b, "- \"announcementBarText\": top bar text (e.g. Free Shipping).\n")
	fmt.Fprintf(&b, "- \"colorScheme\": one of blue, green, red, purple, dark, gold.\n")
	fmt.Fprintf(&b, "- \"boxContent\": object with \"enabled\", \"title\" and \"items\" (array of strings) describing what the package contains.\n\n")
	b.WriteString("Ensure NO Italian or English words remain unless they are part of the product name.\n")
	fmt.Fprintf(&b, "The currency for prices must be %s.\n\n", locale.Currency)

	fmt.Fprintf(&b, "CRITICAL INSTRUCTION FOR TESTIMONIALS: You MUST generate %d testimonials with first names that are common, authentic, and native to %s. Do not use generic, internationally-known names unless they are also very common in %s.\n\n", reviewCount, country, country)
	fmt.Fprintf(&b, "For the \"heroImagePrompt\", describe a scene that is visually distinct to %s. Mention specific environmental details (e.g. architecture, landscapes, interior styles) that match %s.\n", country, country)
	return b.String()
}

// buildReviewsPrompt assembles the instruction for regenerating a
// document's testimonials without touching the rest of its copy.
func buildReviewsPrompt(doc *ContentDocument, locale LocaleConfig, count int) string {
	var b strings.Builder
	b.WriteString("You are a world-class expert copywriter specializing in high-conversion affiliate marketing landing pages.\n\n")
	fmt.Fprintf(&b, "Write exactly %d unique customer reviews in %s for the following product:\n", count, locale.Name)
	fmt.Fprintf(&b, "- Headline: %s\n", doc.Headline)
	fmt.Fprintf(&b, "- Subheadline: %s\n", doc.Subheadline)
	fmt.Fprintf(&b, "- Niche: %s\n\n", doc.Niche)
	fmt.Fprintf(&b, "CRITICAL INSTRUCTION: each review MUST use a first name that is common, authentic, and native to %s. Do not use generic, internationally-known names unless they are also very common in %s.\n\n", locale.CountryContext, locale.CountryContext)
	b.WriteString("Produce a JSON object with a 'testimonials' array. Each entry has 'name', 'title', 'text' and 'rating' (1-5, mostly 5).\n")
	return b.String()
}

// buildTranslationPrompt assembles the instruction for translating a
// projection payload into the target language.
func buildTranslationPrompt(projectionJSON, targetLanguage string, locale LocaleConfig) string {
	var b strings.Builder
	b.WriteString("You are a professional translator specializing in marketing copy.\n")
	fmt.Fprintf(&b, "Translate the user-facing text values in the following JSON object into %s.\n\n", targetLanguage)
	fmt.Fprintf(&b, "CRITICAL INSTRUCTION: For each object in the 'testimonials' array, you MUST generate a new 'name' field. This name must be a common and culturally appropriate name for %s and its context (%s). DO NOT translate the original name; generate a completely new, suitable name.\n\n", targetLanguage, locale.CountryContext)
	b.WriteString("Maintain the EXACT JSON structure of the original, but add the new 'name' field to each object inside the 'testimonials' array.\n")
	b.WriteString("Do NOT translate JSON keys. Keep every array the same length and order as the original.\n\n")
	b.WriteString("JSON to process:\n")
	b.WriteString(projectionJSON)
	return b.String()
}

// imageStyleInstruction returns the generation instruction for one
// gallery image style. Custom free-text prompts pass through untouched.
func imageStyleInstruction(style ImageStyle, custom string) string {
	switch style {
	case ImageStyleTechnical:
		return "Generate a technical/exploded view product shot of the item in the reference image, studio lighting, white background, professional e-commerce photography."
	case ImageStyleBeforeAfter:
		return "Generate a before/after comparison image featuring the product from the reference image, split composition, realistic photography."
	case ImageStyleLifestyle:
		return "Generate a lifestyle photo of a person naturally using the product from the reference image in a everyday home setting, warm realistic photography."
	case ImageStyleCustom:
		return custom
	}
	return custom
}
