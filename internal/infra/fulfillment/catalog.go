package fulfillment

import "giftscout/internal/domain/entity"

// builtinCatalog returns the demo gift catalog used when the provider has no
// credentials, and as the fallback when a live catalog fetch fails.
func builtinCatalog() []entity.Gift {
	return []entity.Gift{
		{
			ID:          "gift-1",
			Name:        "Starbucks Gift Card",
			Description: "A thoughtful $10 Starbucks gift card for coffee lovers",
			Price:       10.00,
			ImageURL:    "https://via.placeholder.com/300x200/4F46E5/FFFFFF?text=Starbucks+Gift+Card",
			Category:    "Food & Beverage",
		},
		{
			ID:          "gift-2",
			Name:        "Amazon Gift Card",
			Description: "Popular $25 Amazon gift card - let them choose their perfect gift",
			Price:       25.00,
			ImageURL:    "https://via.placeholder.com/300x200/FF9900/FFFFFF?text=Amazon+Gift+Card",
			Category:    "Retail",
		},
		{
			ID:          "gift-3",
			Name:        "Gourmet Coffee Box",
			Description: "Premium artisanal coffee selection delivered fresh",
			Price:       35.00,
			ImageURL:    "https://via.placeholder.com/300x200/8B4513/FFFFFF?text=Coffee+Box",
			Category:    "Food & Beverage",
		},
		{
			ID:          "gift-4",
			Name:        "Custom Branded Notebook",
			Description: "Elegant leather-bound notebook with personalized message",
			Price:       22.00,
			ImageURL:    "https://via.placeholder.com/300x200/4B5563/FFFFFF?text=Notebook",
			Category:    "Office Supplies",
		},
		{
			ID:          "gift-5",
			Name:        "Plants & Flowers Delivery",
			Description: "Beautiful potted plant or fresh flower bouquet",
			Price:       40.00,
			ImageURL:    "https://via.placeholder.com/300x200/10B981/FFFFFF?text=Plants",
			Category:    "Flowers",
		},
		{
			ID:          "gift-6",
			Name:        "Wine Selection",
			Description: "Curated wine selection from local vineyards",
			Price:       50.00,
			ImageURL:    "https://via.placeholder.com/300x200/DC2626/FFFFFF?text=Wine",
			Category:    "Food & Beverage",
		},
		{
			ID:          "gift-7",
			Name:        "Tech Accessories Kit",
			Description: "USB-C cables, wireless charger, and other essentials",
			Price:       30.00,
			ImageURL:    "https://via.placeholder.com/300x200/6366F1/FFFFFF?text=Tech+Kit",
			Category:    "Electronics",
		},
		{
			ID:          "gift-8",
			Name:        "Chocolate Gift Box",
			Description: "Premium artisan chocolates in elegant packaging",
			Price:       28.00,
			ImageURL:    "https://via.placeholder.com/300x200/78350F/FFFFFF?text=Chocolate",
			Category:    "Food & Beverage",
		},
	}
}
