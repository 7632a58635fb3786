package postgres

import (
	"testing"

	"github.com/leapstack-labs/sqlsample/pkg/adapter"
	"github.com/stretchr/testify/assert"
)

func TestBuildPostgresDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  adapter.Config
		want string
	}{
		{
			name: "defaults",
			cfg:  adapter.Config{Database: "app"},
			want: "host=localhost port=5432 dbname=app sslmode=disable",
		},
		{
			name: "full config",
			cfg: adapter.Config{
				Host:     "db.internal",
				Port:     5433,
				Database: "app",
				Username: "svc",
				Password: "secret",
				Options:  map[string]string{"sslmode": "require"},
			},
			want: "host=db.internal port=5433 dbname=app sslmode=require user=svc password=secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildPostgresDSN(tt.cfg))
		})
	}
}

func TestAdapterDialect(t *testing.T) {
	a := New(nil)
	assert.Equal(t, "postgres", a.Dialect().Name)
}
