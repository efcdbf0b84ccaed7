package layers_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"layersync/core/database"
	"layersync/core/document"
	"layersync/core/layer"
	"layersync/feature/layers"
	"layersync/feature/layers/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func buildSample(t *testing.T, engine *layer.Engine) *layer.Database {
	t.Helper()
	doc, err := document.Decode(strings.NewReader(sample))
	require.NoError(t, err)
	ldb, err := doc.Build(engine)
	require.NoError(t, err)
	return ldb
}

func TestNewStore(t *testing.T) {
	connect := func(t *testing.T) *gorm.DB {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		return db
	}

	t.Run("Migrate", func(t *testing.T) {
		db := connect(t)
		_, err := layers.NewStore(db, true)
		require.NoError(t, err)
		assert.True(t, db.Migrator().HasTable(&models.NodeState{}))
		assert.True(t, db.Migrator().HasTable(&models.BaseState{}))
	})

	t.Run("Missing tables", func(t *testing.T) {
		_, err := layers.NewStore(connect(t), false)
		assert.ErrorIs(t, err, layers.ErrSchemaOutdated)
	})

	t.Run("Verified schema", func(t *testing.T) {
		db := connect(t)
		require.NoError(t, db.AutoMigrate(&models.NodeState{}, &models.BaseState{}))
		_, err := layers.NewStore(db, false)
		assert.NoError(t, err)
	})

	t.Run("Outdated column set", func(t *testing.T) {
		db := connect(t)
		require.NoError(t, db.AutoMigrate(&models.NodeState{}, &models.BaseState{}))
		require.NoError(t, db.Migrator().DropColumn(&models.BaseState{}, "local_view_bits"))

		_, err := layers.NewStore(db, false)
		assert.ErrorIs(t, err, layers.ErrSchemaOutdated)
		assert.ErrorContains(t, err, "local_view_bits")
	})
}

func TestStore_SaveRestore(t *testing.T) {
	ctx := t.Context()
	engine := layer.NewEngine(nil)
	store := memoryStore(t)

	saved := buildSample(t, engine)
	beauty := saved.Scene("Shot").ViewLayer("Beauty")
	layer.SetFlag(beauty.NodeByPath("Lights"), layer.NodeExcluded, true)
	beauty.NodeByPath("Set/Props").LocalCollectionsBits = 0
	engine.SyncAll(saved)
	beauty.FindBase(saved.Graph.FindObject("Sphere")).Flag |= layer.BaseHidden

	nodes, bases, err := store.Save(ctx, "shot", saved)
	require.NoError(t, err)
	assert.Equal(t, 8, nodes)
	assert.Equal(t, 9, bases, "excluded Lamp has no base in Beauty")

	// Saving again replaces the rows instead of adding to them.
	_, _, err = store.Save(ctx, "shot", saved)
	require.NoError(t, err)

	fresh := buildSample(t, engine)
	applied, err := store.Restore(ctx, "shot", fresh)
	require.NoError(t, err)
	assert.Equal(t, 17, applied)
	engine.SyncAll(fresh)

	restored := fresh.Scene("Shot").ViewLayer("Beauty")
	assert.True(t, restored.NodeByPath("Lights").Excluded())
	assert.Zero(t, restored.NodeByPath("Set/Props").LocalCollectionsBits)
	assert.Nil(t, restored.FindBase(fresh.Graph.FindObject("Lamp")))
	assert.True(t, restored.FindBase(fresh.Graph.FindObject("Sphere")).Has(layer.BaseHidden))
	assert.True(t, restored.FindBase(fresh.Graph.FindObject("Cube")).Has(layer.BaseSelected))

	t.Run("Other documents are untouched", func(t *testing.T) {
		other := buildSample(t, engine)
		applied, err := store.Restore(ctx, "other", other)
		require.NoError(t, err)
		assert.Zero(t, applied)
	})

	t.Run("Stale rows are skipped", func(t *testing.T) {
		ldb := layer.NewDatabase()
		ldb.NewScene("Shot").AddViewLayer("Beauty")
		engine.SyncAll(ldb)

		applied, err := store.Restore(ctx, "shot", ldb)
		require.NoError(t, err)
		assert.Equal(t, 1, applied, "only the Beauty root node exists")
	})
}

func TestStore_SaveRollsBack(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	columns := func(names ...string) *sqlmock.Rows {
		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
		for _, name := range names {
			rows.AddRow(name, "varchar(191)", "YES", "", nil, "")
		}
		return rows
	}
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `node_states`")).
		WillReturnRows(columns("id", "document", "scene", "view_layer", "path", "flag", "local_bits", "updated_at"))
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `base_states`")).
		WillReturnRows(columns("id", "document", "scene", "view_layer", "object", "selected", "hidden", "local_view_bits", "updated_at"))

	store, err := layers.NewStore(db, false)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `node_states` WHERE document = ?")).
		WithArgs("shot").
		WillReturnError(errors.New("lock wait timeout exceeded"))
	mock.ExpectRollback()

	_, _, err = store.Save(t.Context(), "shot", buildSample(t, layer.NewEngine(nil)))
	assert.ErrorContains(t, err, "failed to clear node state")
	assert.NoError(t, mock.ExpectationsWereMet())
}
