package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/qiblog/quill/config"
	"github.com/qiblog/quill/internal/logger"
	"github.com/qiblog/quill/seed"
	"github.com/qiblog/quill/seo"
	"github.com/qiblog/quill/store"
)

func main() {
	dataDir := flag.String("data", "", "Data directory (overrides config)")
	baseURL := flag.String("baseurl", "", "Base URL (overrides config)")
	doSeed := flag.Bool("seed", false, "Seed the store with starter content if empty")
	sitemapPath := flag.String("sitemap", "", "Write sitemap.xml to this path")
	showStats := flag.Bool("stats", false, "Print document counts")
	flag.Parse()

	log := logger.New()

	cfg := config.Load("quill.yaml")
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}

	st, err := store.Open(filepath.Join(cfg.DataDir, "quill.db"), &store.Options{Logger: &log})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}()

	if *doSeed {
		if err := seed.Run(st, log); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
	}

	if *showStats {
		stats, err := st.Stats()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to read stats")
		}
		log.Info().
			Int("posts", stats.Posts).
			Int("categories", stats.Categories).
			Int("pages", stats.Pages).
			Msg("store contents")
	}

	if *sitemapPath != "" {
		collector := seo.NewCollector(st, cfg.CacheTTL)
		if err := collector.WriteSitemap(afero.NewOsFs(), *sitemapPath, cfg.BaseURL); err != nil {
			log.Fatal().Err(err).Msg("failed to write sitemap")
		}
		log.Info().Str("path", *sitemapPath).Msg("sitemap written")
	}

	if !*doSeed && !*showStats && *sitemapPath == "" {
		flag.Usage()
		os.Exit(2)
	}
}
