// Command seed_products loads the product catalog from a JSON file into the
// database. The catalog is reference data: the diary only ever reads it.
//
// Usage: seed_products <products.json>
package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/slimmom/backend/config"
	"github.com/slimmom/backend/internal/database"
	"github.com/slimmom/backend/internal/models"
)

type seedProduct struct {
	Title                string                `json:"title"`
	Categories           string                `json:"categories"`
	Weight               float64               `json:"weight"`
	Calories             float64               `json:"calories"`
	GroupBloodNotAllowed models.JSONBBoolArray `json:"groupBloodNotAllowed"`
}

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("Usage: %s <products.json>", os.Args[0])
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read products file: %v", err)
	}

	var seeds []seedProduct
	if err := json.Unmarshal(data, &seeds); err != nil {
		log.Fatalf("Failed to parse products file: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	created := 0
	for _, s := range seeds {
		product := models.Product{
			Title:                s.Title,
			Categories:           s.Categories,
			Weight:               s.Weight,
			Calories:             s.Calories,
			GroupBloodNotAllowed: s.GroupBloodNotAllowed,
		}

		// re-running the seeder must not duplicate entries
		var count int64
		if err := db.Model(&models.Product{}).Where("title = ?", s.Title).Count(&count).Error; err != nil {
			log.Fatalf("Failed to check for existing product %q: %v", s.Title, err)
		}
		if count > 0 {
			continue
		}

		if err := db.Create(&product).Error; err != nil {
			log.Fatalf("Failed to create product %q: %v", s.Title, err)
		}
		created++
	}

	log.Printf("Seeded %d products (%d already present)", created, len(seeds)-created)
}
