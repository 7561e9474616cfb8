// Package codforge generates and serves cash-on-delivery product landing
// pages.
//
// Codforge turns a short product brief into a complete, localized
// storefront page using AI providers (Gemini, OpenAI), lets the operator
// edit the resulting content document field by field, translates whole
// documents into other supported locales, and renders the published page
// with a checkout form that forwards leads to an operator webhook.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/codforge/codforge"
//	    "github.com/codforge/codforge/provider"
//	)
//
//	func main() {
//	    // Create provider
//	    p, err := provider.NewGeminiProvider(context.Background(), provider.GeminiConfig{
//	        APIKey: os.Getenv("GEMINI_API_KEY"),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Generate a page
//	    g, err := codforge.NewGenerator(p)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    doc, err := g.Generate(context.Background(), codforge.ProductDetails{
//	        Name:     "AeroKnife Pro",
//	        Niche:    "Kitchen",
//	        Language: "Italiano",
//	    }, 10)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(doc.Headline)
//	}
package codforge
