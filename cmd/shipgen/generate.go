package main

import (
	"context"
	"fmt"
	"hash/fnv"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"shipment-generator/internal/catalog"
	"shipment-generator/internal/config"
	"shipment-generator/internal/db"
	"shipment-generator/internal/gen"
	"shipment-generator/internal/metrics"
	"shipment-generator/internal/output"
	"shipment-generator/internal/publisher"
	"shipment-generator/internal/shipment"
)

// result describes one written fixture.
type result struct {
	Profile string
	Path    string
	Count   int
	Bytes   int64
}

// run generates the named profiles, writes each fixture, then feeds the
// optional database, NATS and metrics sinks.
func run(ctx context.Context, cfg *config.Config, log *zap.Logger, profiles []string) ([]result, error) {
	seed := cfg.Seed
	if !cfg.SeedSet {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info("starting generator",
		zap.Uint64("seed", seed),
		zap.Strings("profiles", profiles),
		zap.String("out_dir", cfg.OutputDir),
	)

	override, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	if override != nil {
		log.Info("loaded catalog", zap.String("file", cfg.CatalogFile), zap.Int("places", len(override.Places())))
	}

	collector := metrics.NewCollector(seed)

	var results []result
	collections := make(map[string]*shipment.Collection, len(profiles))
	for _, name := range profiles {
		p, ok := gen.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown profile %q", name)
		}
		g := gen.New(p, gen.NewSource(profileSeed(seed, name)), profileOptions(cfg, p, override, collector)...)

		start := time.Now()
		c, err := g.Generate(ctx)
		if err != nil {
			return nil, err
		}
		collector.GenerateDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

		path := filepath.Join(cfg.OutputDir, p.Output)
		start = time.Now()
		n, err := output.WriteFile(path, c)
		if err != nil {
			return nil, err
		}
		collector.ObserveWrite(name, time.Since(start), n)
		log.Info("wrote fixture",
			zap.String("profile", name),
			zap.String("path", path),
			zap.Int("shipments", len(c.Shipments)),
			zap.Int64("bytes", n),
		)
		collections[name] = c
		results = append(results, result{Profile: name, Path: path, Count: len(c.Shipments), Bytes: n})
	}

	if cfg.DatabaseURL != "" {
		if err := storeAll(ctx, cfg, log, collector, profiles, collections); err != nil {
			return results, err
		}
	}
	if cfg.NATSURL != "" {
		if err := publishAll(cfg, log, collector, profiles, collections); err != nil {
			return results, err
		}
	}
	if cfg.MetricsTextfile != "" {
		if err := collector.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return results, err
		}
		log.Debug("wrote metrics textfile", zap.String("path", cfg.MetricsTextfile))
	}
	if cfg.PushgatewayURL != "" {
		if err := collector.Push(ctx, cfg.PushgatewayURL, cfg.MetricsJob); err != nil {
			// metrics are best-effort, the fixtures are already on disk
			log.Warn("pushgateway", zap.Error(err))
		}
	}
	return results, nil
}

func profileOptions(cfg *config.Config, p gen.Profile, override *catalog.Catalog, collector *metrics.Collector) []gen.Option {
	opts := []gen.Option{
		gen.WithObserver(collector),
		gen.WithClock(func() time.Time { return time.Now().In(cfg.Location) }),
	}
	if cfg.Count > 0 {
		opts = append(opts, gen.WithCount(cfg.Count))
	}
	switch {
	case !cfg.BaseTime.IsZero():
		opts = append(opts, gen.WithBase(cfg.BaseTime))
	case !p.Base.IsZero() && cfg.Location != nil:
		// keep the profile's wall-clock anchor in the configured zone
		b := p.Base
		opts = append(opts, gen.WithBase(time.Date(b.Year(), b.Month(), b.Day(), b.Hour(), b.Minute(), b.Second(), 0, cfg.Location)))
	}
	if override != nil {
		opts = append(opts, gen.WithCatalog(override))
	}
	if p.Name == gen.Fleet && cfg.FleetConsistentTimes {
		opts = append(opts, gen.WithTiming(gen.ConsistentFleetTiming()))
	}
	return opts
}

// profileSeed derives an independent stream per profile from the run seed.
func profileSeed(seed uint64, profile string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(profile))
	return seed ^ h.Sum64()
}

func storeAll(ctx context.Context, cfg *config.Config, log *zap.Logger, collector *metrics.Collector, profiles []string, collections map[string]*shipment.Collection) error {
	if cfg.DBAutoCreate {
		if err := db.EnsureDatabase(ctx, cfg.DatabaseURL, log); err != nil {
			return fmt.Errorf("ensure database: %w", err)
		}
	}
	sqlDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db open: %w", err)
	}
	defer sqlDB.Close()
	if err := db.Ping(ctx, sqlDB); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	if err := db.InitSchema(ctx, sqlDB); err != nil {
		return err
	}
	for _, name := range profiles {
		n, err := db.InsertShipments(ctx, sqlDB, name, collections[name].Shipments)
		if err != nil {
			return err
		}
		collector.DBRowsInserted.WithLabelValues(name).Add(float64(n))
		log.Info("stored shipments", zap.String("profile", name), zap.Int("rows", n))
	}
	return nil
}

func publishAll(cfg *config.Config, log *zap.Logger, collector *metrics.Collector, profiles []string, collections map[string]*shipment.Collection) error {
	pub, err := publisher.NewNATSPublisher(cfg.NATSURL, cfg.NATSSubjectPrefix, cfg.LogNATSSubjects, collector.PublisherMetrics(), log)
	if err != nil {
		return fmt.Errorf("nats connect: %w", err)
	}
	defer pub.Close()
	for _, name := range profiles {
		if err := pub.PublishAll(name, collections[name]); err != nil {
			return err
		}
		log.Info("published shipments",
			zap.String("profile", name),
			zap.Int("messages", len(collections[name].Shipments)),
			zap.String("subject_prefix", cfg.NATSSubjectPrefix),
		)
	}
	return nil
}

// summarize renders per-company and per-status counts, sorted by key.
func summarize(shipments []shipment.Shipment) []string {
	companies := map[string]int{}
	statuses := map[string]int{}
	for _, s := range shipments {
		companies[s.Company]++
		statuses[string(s.Status)]++
	}
	var lines []string
	for _, k := range sortedKeys(companies) {
		lines = append(lines, fmt.Sprintf("company %-12s %d", k, companies[k]))
	}
	for _, k := range sortedKeys(statuses) {
		lines = append(lines, fmt.Sprintf("status  %-12s %d", k, statuses[k]))
	}
	return lines
}
