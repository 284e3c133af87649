package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"storage": map[string]any{
			"bucketUrl": "mem://",
		},
		"preOrder": map[string]any{
			"maxProofBytes": 4194304,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "PREORDER_MAXPROOFBYTES", want: "preOrder.maxProofBytes"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.PreOrder.MaxProofBytes != 4<<20 {
		t.Fatalf("MaxProofBytes = %d, want %d", cfg.PreOrder.MaxProofBytes, 4<<20)
	}
	if len(cfg.PreOrder.AllowedProofTypes) != 4 {
		t.Fatalf("AllowedProofTypes = %v", cfg.PreOrder.AllowedProofTypes)
	}
	if cfg.Sales.LowStockThreshold != defaultLowStockThreshold {
		t.Fatalf("LowStockThreshold = %d", cfg.Sales.LowStockThreshold)
	}
	if cfg.Cart.Capacity != defaultCartCapacity || cfg.Cart.IdleTTL != defaultCartIdleTTL {
		t.Fatalf("Cart = %+v", cfg.Cart)
	}
	if cfg.Storage.BucketURL != "mem://" {
		t.Fatalf("BucketURL = %q", cfg.Storage.BucketURL)
	}
	if cfg.Auth == nil || cfg.Firebase == nil || cfg.PubSub == nil || cfg.Drafter == nil || cfg.Worker == nil || cfg.QRCode == nil {
		t.Fatal("expected every optional section to be set")
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		PreOrder: &PreOrderConfig{MaxProofBytes: 1024, TimeZone: "Asia/Taipei"},
		Sales:    &SalesConfig{LowStockThreshold: 2},
	}
	applyDefaults(cfg)

	if cfg.PreOrder.MaxProofBytes != 1024 {
		t.Fatalf("MaxProofBytes = %d, want 1024", cfg.PreOrder.MaxProofBytes)
	}
	if cfg.Sales.LowStockThreshold != 2 {
		t.Fatalf("LowStockThreshold = %d, want 2", cfg.Sales.LowStockThreshold)
	}

	loc, err := cfg.PreOrder.Location()
	if err != nil {
		t.Fatalf("Location() error = %v", err)
	}
	if loc.String() != "Asia/Taipei" {
		t.Fatalf("Location() = %s", loc)
	}
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("CAFE_POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("CAFE_POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("CAFE_POSTGRES_REPLICAS_0_USERNAME", "reader")

	replicas := buildReplicasFromEnv()
	if len(replicas) != 1 {
		t.Fatalf("len(replicas) = %d, want 1", len(replicas))
	}
	if replicas[0].Host != "replica-0" || replicas[0].Port != "5433" || replicas[0].UserName != "reader" {
		t.Fatalf("replica = %+v", replicas[0])
	}
}
