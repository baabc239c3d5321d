package migration

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_Embedded(t *testing.T) {
	migs, err := loadMigrations(embedded, "sql")
	require.NoError(t, err)
	require.Len(t, migs, 3)

	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "create_accounts", migs[0].Name)
	assert.Equal(t, "create_jobs", migs[1].Name)
	assert.Equal(t, "create_applications", migs[2].Name)
	for _, m := range migs {
		assert.Len(t, m.Checksum, 64)
	}
}

func TestLoadMigrations_SortsAndSkipsUnknownFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"m/V10__later.sql":  {Data: []byte("SELECT 10;")},
		"m/V2__earlier.sql": {Data: []byte("SELECT 2;")},
		"m/README.md":       {Data: []byte("notes")},
	}

	migs, err := loadMigrations(fsys, "m")
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, int64(2), migs[0].Version)
	assert.Equal(t, int64(10), migs[1].Version)
}

func TestLoadMigrations_Errors(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
		want string
	}{
		{
			name: "empty file",
			fs:   fstest.MapFS{"m/V1__empty.sql": {Data: []byte("  \n")}},
			want: "empty migration file",
		},
		{
			name: "duplicate version",
			fs: fstest.MapFS{
				"m/V1__a.sql":  {Data: []byte("SELECT 1;")},
				"m/V01__b.sql": {Data: []byte("SELECT 1;")},
			},
			want: "duplicate migration version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadMigrations(tt.fs, "m")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	migs, err := loadMigrations(fstest.MapFS{}, "nope")
	require.NoError(t, err)
	assert.Empty(t, migs)
}

func TestRun_NilDB(t *testing.T) {
	err := Default(nil).Run(context.Background(), nil)
	require.Error(t, err)
}
