package main

import (
	"fmt"
	"log"
	"os"

	"github.com/portfolioapi/internal/db"
)

func main() {
	if err := db.Init(os.Getenv("DATABASE_PATH")); err != nil {
		log.Fatal("failed to initialize database:", err)
	}

	if err := db.SeedWorks(db.DB); err != nil {
		log.Fatal("failed to seed works:", err)
	}

	var count int64
	db.DB.Model(&db.Work{}).Count(&count)
	fmt.Printf("works table now holds %d records\n", count)
}
