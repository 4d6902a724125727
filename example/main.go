// Command example shows the query grammar end to end against a local MySQL.
package main

import (
	"context"
	"fmt"
	"log"

	securedb "github.com/dzentota/secure-db"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client, err := securedb.Connect(ctx, "mysql", securedb.Config{
		Host:     "localhost",
		Port:     3306,
		Database: "app",
		Username: "root",
		Password: "admin",
	},
		securedb.WithPrefix("app_"),
		securedb.WithLogger(logger),
		securedb.WithStatementCache(64),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	// Insert through the grammar: table and columns are quoted, values bound.
	if _, err := client.Insert(ctx, "users", map[string]any{
		"name":   "ann",
		"email":  "ann@example.com",
		"active": true,
	}); err != nil {
		log.Fatal(err)
	}

	// Conditional filtering: pass securedb.Skip to drop a block.
	rows, err := client.Select(ctx,
		"SELECT * FROM ?_users WHERE 1=1{ AND active = ?}{ AND role IN(?a)}",
		true, securedb.Skip)
	if err != nil {
		log.Fatal(err)
	}
	for _, row := range rows {
		fmt.Println(row["name"])
	}

	// Everything inside a transaction uses the same surface.
	err = client.Transaction(ctx, func(tx *securedb.Tx) error {
		_, err := tx.Update(ctx, "users",
			map[string]any{"active": false},
			map[string]any{"email": "ann@example.com"})
		return err
	})
	if err != nil {
		log.Fatal(err)
	}
}
