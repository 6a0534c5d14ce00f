package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/quantgrove/option-pricer/src/marketdata"
	"github.com/quantgrove/option-pricer/src/pricerapi"
	"github.com/quantgrove/option-pricer/src/services"
	"github.com/quantgrove/option-pricer/src/utils"
)

func setupRouter(service *services.PricingService) *mux.Router {
	router := mux.NewRouter()

	pricerapi.SetupHandler(router.PathPrefix("/options").Subrouter(), service)

	return router
}

var runCmd = &cobra.Command{
	Use:   "price_server --port 8080",
	Short: "Serve the option pricing API over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		port, err := cmd.Flags().GetInt("port")
		if err != nil {
			log.Fatalf("error getting port: %v", err)
		}

		projectDir := os.Getenv("PROJECTS_DIR")
		if projectDir == "" {
			projectDir = "."
		}

		if err := utils.InitEnvironmentVariables(projectDir, goEnv); err != nil {
			log.Fatalf("error loading environment variables: %v", err)
		}

		config, err := utils.LoadPricerConfig(filepath.Join(projectDir, "pricer.yaml"))
		if err != nil {
			log.Fatalf("error loading config: %v", err)
		}

		provider, err := marketdata.NewServiceFromConfig(config)
		if err != nil {
			log.Fatalf("error creating data provider: %v", err)
		}

		service := services.NewPricingService(provider, config)

		srv := &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      setupRouter(service),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 45 * time.Second,
		}

		log.Infof("listening on :%d", port)

		if err := srv.ListenAndServe(); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	},
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().Int("port", 8080, "The port to listen on.")

	runCmd.Execute()
}
