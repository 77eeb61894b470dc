package nats

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Bucket names. WARD_STATE holds the shared hospital state (configuration,
// admitted and discharged patients), WARD_NOTIFY one key per staff member,
// WARD_STATS the dashboard counters.
const (
	StateBucket  = "WARD_STATE"
	NotifyBucket = "WARD_NOTIFY"
	StatsBucket  = "WARD_STATS"
)

var statsKeys = []string{
	"total_admissions", "failed_admissions", "total_discharges",
}

type EmbeddedServer struct {
	server *server.Server
	nc     *nats.Conn
	js     jetstream.JetStream
}

func NewEmbeddedServer(dataDir string) (*EmbeddedServer, error) {
	opts := &server.Options{
		JetStream: true,
		StoreDir:  filepath.Join(dataDir, "nats-store"),
		Port:      -1, // random port, internal use only
		HTTPPort:  -1, // no HTTP monitoring
	}

	if err := os.MkdirAll(opts.StoreDir, 0755); err != nil {
		return nil, fmt.Errorf("could not create store dir: %w", err)
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		return nil, fmt.Errorf("could not create NATS server: %w", err)
	}

	ns.Start()

	if !ns.ReadyForConnections(10 * time.Second) {
		return nil, fmt.Errorf("NATS server did not become ready")
	}

	slog.Info("Embedded NATS server started", "clientURL", ns.ClientURL())

	nc, err := nats.Connect(ns.ClientURL())
	if err != nil {
		ns.Shutdown()
		return nil, fmt.Errorf("could not connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		ns.Shutdown()
		return nil, fmt.Errorf("could not initialize JetStream: %w", err)
	}

	es := &EmbeddedServer{
		server: ns,
		nc:     nc,
		js:     js,
	}

	if err := es.createKVStores(); err != nil {
		es.Shutdown()
		return nil, err
	}

	return es, nil
}

func (es *EmbeddedServer) createKVStores() error {
	ctx := context.Background()

	// Shared hospital state: one versionless blob per key, last writer wins.
	_, err := es.js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      StateBucket,
		Description: "Hospital configuration and patient collections",
		History:     10,
		TTL:         0,                // no expiry
		MaxBytes:    50 * 1024 * 1024, // 50MB
		Storage:     jetstream.FileStorage,
	})
	if err != nil {
		return fmt.Errorf("could not create state KV store: %w", err)
	}
	slog.Info("WARD_STATE KV store ready")

	// Per-staff notification feeds. Never expired by the system.
	_, err = es.js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      NotifyBucket,
		Description: "Per-staff notification feeds",
		History:     1, // keep only the latest list
		TTL:         0,
		MaxBytes:    50 * 1024 * 1024, // 50MB
		Storage:     jetstream.FileStorage,
	})
	if err != nil {
		return fmt.Errorf("could not create notify KV store: %w", err)
	}
	slog.Info("WARD_NOTIFY KV store ready")

	statsKV, err := es.js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      StatsBucket,
		Description: "Admission and discharge counters",
		History:     10,
		TTL:         0,
		MaxBytes:    1024 * 1024, // 1MB
		Storage:     jetstream.FileStorage,
	})
	if err != nil {
		return fmt.Errorf("could not create stats KV store: %w", err)
	}

	for _, key := range statsKeys {
		if _, err := statsKV.Get(ctx, key); err != nil {
			// Key doesn't exist yet, initialize with 0
			statsKV.Put(ctx, key, []byte("0"))
		}
	}
	slog.Info("WARD_STATS KV store ready")

	return nil
}

func (es *EmbeddedServer) JetStream() jetstream.JetStream {
	return es.js
}

func (es *EmbeddedServer) Connection() *nats.Conn {
	return es.nc
}

func (es *EmbeddedServer) Shutdown() {
	if es.nc != nil {
		es.nc.Close()
	}
	if es.server != nil {
		es.server.Shutdown()
		es.server.WaitForShutdown()
	}
	slog.Info("NATS server stopped")
}
