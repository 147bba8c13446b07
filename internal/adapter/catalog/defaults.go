package catalog

import domain "github.com/RoshanShah43/rs-bazar/internal/entity"

// Defaults is the last-resort product set served when the catalog service
// has never answered. Prices are in rupees.
func Defaults() map[string]domain.Product {
	list := []domain.Product{
		{
			ID:          "freefire",
			Title:       "Free Fire",
			Image:       "/img/freefire.jpg",
			Category:    "Games",
			Description: "Fast-paced battle royale game.",
			Packages: []domain.Package{
				{ID: "ff1", Label: "Free Fire 25 Diamonds", Price: 35},
				{ID: "ff2", Label: "Free Fire 50 Diamonds", Price: 65},
				{ID: "ff3", Label: "Free Fire 115 Diamonds", Price: 99},
			},
		},
		{
			ID:          "mobilelegends",
			Title:       "Mobile Legends",
			Image:       "/img/mobilelegends.jpg",
			Category:    "Games",
			Description: "Popular MOBA game with exciting gameplay.",
			Packages: []domain.Package{
				{ID: "p1", Label: "500 Diamonds", Price: 100},
				{ID: "p2", Label: "1000 Diamonds", Price: 200},
			},
		},
		{
			ID:          "pubg",
			Title:       "PUBG Mobile",
			Image:       "/img/pubg.jpg",
			Category:    "Games",
			Description: "Battle royale game with intense action.",
			Packages: []domain.Package{
				{ID: "p1", Label: "30 UC", Price: 30},
				{ID: "p2", Label: "300 UC", Price: 300},
				{ID: "p3", Label: "1000 UC", Price: 1000},
			},
		},
		{
			ID:          "roblox",
			Title:       "Roblox",
			Image:       "/img/roblox.jpg",
			Category:    "Games",
			Description: "Creative platform for building and playing games.",
			Packages: []domain.Package{
				{ID: "p1", Label: "400 Robux", Price: 30},
				{ID: "p2", Label: "800 Robux", Price: 60},
				{ID: "p3", Label: "2000 Robux", Price: 150},
			},
		},
		{
			ID:          "netflix",
			Title:       "Netflix",
			Image:       "/img/netflix.png",
			Category:    "Subscriptions",
			Description: "Stream movies, series, and documentaries.",
			Packages: []domain.Package{
				{ID: "p1", Label: "Netflix Standard - 1 Month", Price: 649},
				{ID: "p2", Label: "Netflix Premium - 1 Month", Price: 799},
			},
		},
		{
			ID:          "spotify",
			Title:       "Spotify",
			Image:       "/img/spotify.png",
			Category:    "Subscriptions",
			Description: "Music streaming service.",
			Packages: []domain.Package{
				{ID: "p1", Label: "Spotify Premium - 1 Month", Price: 99},
			},
		},
	}

	out := make(map[string]domain.Product, len(list))
	for _, p := range list {
		out[p.ID] = p
	}
	return out
}
