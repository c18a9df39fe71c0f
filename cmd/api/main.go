package main

import (
	"fmt"
	"net/http"

	"github.com/staffdir/staffdir-backend-go/internal/config"
	appHTTP "github.com/staffdir/staffdir-backend-go/internal/handler/http"
	"github.com/staffdir/staffdir-backend-go/internal/pkg/database"
	"github.com/staffdir/staffdir-backend-go/internal/repository/postgresql"
	employeeService "github.com/staffdir/staffdir-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	txManager := postgresql.NewTxManager(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, txManager)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(cfg, employeeHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
