package booklet

import (
	"context"

	"github.com/ukaji3/expobook-go/pkg/booklet/loader"
	"github.com/ukaji3/expobook-go/pkg/booklet/models"
	"github.com/ukaji3/expobook-go/pkg/booklet/rules"
	"go.uber.org/zap"
)

// Build loads both sheets and assembles the ordered booklet. Sheets are
// loaded one after the other; any error aborts the build.
func Build(ctx context.Context, l loader.Loader, opts Options, logger *zap.Logger) (*models.Booklet, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	roomTable, err := l.Load(ctx, opts.Rooms)
	if err != nil {
		return nil, NewStageError("load", opts.Rooms.Name, err)
	}
	exhibitTable, err := l.Load(ctx, opts.Exhibits)
	if err != nil {
		return nil, NewStageError("load", opts.Exhibits.Name, err)
	}

	if MigrateRoomColumns(roomTable) {
		logger.Info("Renamed award column",
			zap.String("from", ColumnAwardLegacy),
			zap.String("to", ColumnAward),
		)
	}
	rooms, err := DecodeRooms(roomTable)
	if err != nil {
		return nil, NewStageError("decode", opts.Rooms.Name, err)
	}
	exhibits, err := DecodeExhibits(exhibitTable, opts.ExhibitTitleColumn, opts.ExhibitDescriptionColumn)
	if err != nil {
		return nil, NewStageError("decode", opts.Exhibits.Name, err)
	}
	logger.Debug("Decoded sheets",
		zap.Int("rooms", len(rooms.Records)),
		zap.Int("exhibits", len(exhibits)),
		zap.Bool("has_award", rooms.HasAward),
	)

	b := Merge(rooms, exhibits, opts.MissingDescription)
	missing := 0
	for _, row := range b.Rows {
		if row.ExhibitDescription == opts.MissingDescription {
			missing++
		}
	}
	if missing > 0 {
		logger.Warn("Exhibits without description", zap.Int("count", missing))
	}

	kept, dropped := Filter(b.Rows, rules.Exclusions(opts.ExcludeKeywords))
	for name, n := range dropped {
		logger.Debug("Excluded rows", zap.String("rule", name), zap.Int("count", n))
	}
	b.Rows = kept

	Sort(b.Rows, rules.NewLocationOrder(opts.LocationOrder))

	logger.Info("Booklet assembled", zap.Int("rows", len(b.Rows)))
	return b, nil
}
