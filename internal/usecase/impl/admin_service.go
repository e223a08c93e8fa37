package impl

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "nightmap/internal/delivery/context"
	"nightmap/internal/domain/entity"
	domainerrors "nightmap/internal/domain/errors"
	"nightmap/internal/domain/repository"
	"nightmap/internal/domain/service"
	"nightmap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// exportColumns is the canonical spreadsheet layout, shared by the importer
// and the exporter. Category columns hold display names, not ids.
var exportColumns = []string{
	"id", "name", "description", "type", "genre", "event_type",
	"price_category", "website", "address", "url_address", "city", "phone",
	"email", "latitude", "longitude", "live", "broadcasted_live", "event",
	"mood", "music", "is_active", "created_at", "updated_at",
}

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager    repository.TransactionManager
	activityRepo repository.ActivityRepository
	categoryRepo repository.CategoryRepository
	linkResolver service.PlaceLinkResolver
	blobStorage  service.BlobStorage
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ActivityRepo repository.ActivityRepository
	CategoryRepo repository.CategoryRepository
	LinkResolver service.PlaceLinkResolver
	BlobStorage  service.BlobStorage
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:    params.TxManager,
		activityRepo: params.ActivityRepo,
		categoryRepo: params.CategoryRepo,
		linkResolver: params.LinkResolver,
		blobStorage:  params.BlobStorage,
		logger:       params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveActivity creates or updates a venue. When a map link is present, blank
// location fields are filled from the resolved link; existing values are
// never overwritten.
func (srv *adminService) SaveActivity(ctx context.Context, input *usecase.SaveActivityInput) (*usecase.ActivityView, error) {
	activity := &entity.Activity{
		ID:              input.ID,
		Name:            input.Name,
		Description:     input.Description,
		PinTypeID:       input.PinTypeID,
		Website:         input.Website,
		Address:         input.Address,
		URLAddress:      input.URLAddress,
		City:            input.City,
		Phone:           input.Phone,
		Email:           input.Email,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		GenreID:         input.GenreID,
		EventTypeID:     input.EventTypeID,
		PriceCategoryID: input.PriceCategoryID,
		Live:            input.Live,
		BroadcastedLive: input.BroadcastedLive,
		Event:           input.Event,
		Mood:            input.Mood,
		Music:           input.Music,
		IsActive:        input.IsActive,
	}

	srv.enrichFromMapLink(ctx, activity)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activities := repoFactory.Activities()

		if activity.ID == 0 {
			return errors.Wrap(activities.Create(ctx, activity), "failed to create activity")
		}

		if _, err := activities.FindByID(ctx, activity.ID); err != nil {
			if errors.Is(err, repository.ErrActivityNotFound) {
				return errors.Wrap(domainerrors.ErrActivityNotFound, "activity not found")
			}

			return errors.Wrap(err, "failed to find activity")
		}

		return errors.Wrap(activities.Update(ctx, activity), "failed to update activity")
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to save activity", slog.Any("activityID", input.ID), slog.Any("error", err))

		return nil, err
	}

	saved, err := srv.activityRepo.FindByID(ctx, activity.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload saved activity")
	}

	srv.log(ctx).Info("Saved activity", slog.Any("activityID", saved.ID), slog.String("name", saved.Name))

	return toActivityView(saved, srv.blobStorage), nil
}

// enrichFromMapLink fills blank location fields from the resolved map link.
// Resolution is best-effort; a failed resolve leaves the activity untouched.
func (srv *adminService) enrichFromMapLink(ctx context.Context, activity *entity.Activity) {
	if activity.URLAddress == "" {
		return
	}

	place := srv.linkResolver.Resolve(ctx, activity.URLAddress)
	if place == nil {
		srv.log(ctx).Debug("Map link resolution yielded nothing", slog.String("urlAddress", activity.URLAddress))

		return
	}

	if activity.Name == "" && place.Name != "" {
		activity.Name = place.Name
	}
	if activity.Address == "" && place.Address != "" {
		activity.Address = place.Address
	}
	if activity.City == "" && place.City != "" {
		activity.City = place.City
	}
	if activity.Latitude == nil {
		activity.Latitude = place.Lat()
	}
	if activity.Longitude == nil {
		activity.Longitude = place.Lon()
	}
}

// ImportActivities reads a CSV stream and upserts one venue per row. Rows
// with a known id update that record; rows without one match by name and fall
// back to insert. Bad rows are reported and skipped without aborting the rest.
func (srv *adminService) ImportActivities(ctx context.Context, r io.Reader) (*usecase.ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "missing CSV header")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["name"]; !ok {
		if _, idOK := columns["id"]; !idOK {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "CSV header must contain a name or id column")
		}
	}

	summary := &usecase.ImportSummary{}

	for rowNumber := 1; ; rowNumber++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: %v", rowNumber, err))

			continue
		}

		created, err := srv.importRow(ctx, columns, record)
		if err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d: %v", rowNumber, err))

			continue
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}

	srv.log(ctx).Info("Imported activities",
		slog.Int("created", summary.Created),
		slog.Int("updated", summary.Updated),
		slog.Int("skipped", summary.Skipped))

	return summary, nil
}

// importRow parses, enriches and upserts a single data row. It reports
// whether a new record was inserted.
func (srv *adminService) importRow(ctx context.Context, columns map[string]int, record []string) (bool, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[idx])
	}

	activity := &entity.Activity{
		Name:            cell("name"),
		Description:     cell("description"),
		Website:         cell("website"),
		Address:         cell("address"),
		URLAddress:      cell("url_address"),
		City:            cell("city"),
		Phone:           cell("phone"),
		Email:           cell("email"),
		BroadcastedLive: cell("broadcasted_live"),
		Event:           cell("event"),
		Mood:            cell("mood"),
		Music:           cell("music"),
	}

	if raw := cell("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return false, errors.New("id must be a positive integer")
		}
		activity.ID = id
	}

	var err error
	if activity.Latitude, err = parseOptionalFloat(cell("latitude")); err != nil {
		return false, errors.New("latitude must be a decimal number")
	}
	if activity.Longitude, err = parseOptionalFloat(cell("longitude")); err != nil {
		return false, errors.New("longitude must be a decimal number")
	}
	if activity.Live, err = parseOptionalBool(cell("live")); err != nil {
		return false, errors.New("live must be a boolean")
	}
	if activity.IsActive, err = parseOptionalBool(cell("is_active")); err != nil {
		return false, errors.New("is_active must be a boolean")
	}

	if err := srv.resolveRowCategories(ctx, activity, cell); err != nil {
		return false, err
	}

	// Enrichment runs before persistence, exactly once per row. Bulk rows
	// that already carry both coordinates skip resolution.
	if activity.Latitude == nil || activity.Longitude == nil {
		srv.enrichFromMapLink(ctx, activity)
	}

	if activity.Name == "" {
		return false, errors.New("name is required")
	}

	created := false
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activities := repoFactory.Activities()

		if activity.ID == 0 {
			existing, err := activities.FindByName(ctx, activity.Name)
			switch {
			case err == nil:
				activity.ID = existing.ID
			case errors.Is(err, repository.ErrActivityNotFound):
				created = true
			default:
				return errors.Wrap(err, "failed to match activity by name")
			}
		}

		return errors.Wrap(activities.Save(ctx, activity), "failed to save activity")
	})
	if err != nil {
		return false, err
	}

	return created, nil
}

// resolveRowCategories maps the spreadsheet's display-name columns to
// reference ids. A blank cell leaves the reference unset; an unknown name
// rejects the row.
func (srv *adminService) resolveRowCategories(ctx context.Context, activity *entity.Activity, cell func(string) string) error {
	if name := cell("type"); name != "" {
		pinType, err := srv.categoryRepo.FindPinTypeByName(ctx, name)
		if err != nil {
			return errors.Errorf("unknown pin type %q", name)
		}
		activity.PinTypeID = &pinType.ID
	}

	if name := cell("genre"); name != "" {
		genre, err := srv.categoryRepo.FindGenreByName(ctx, name)
		if err != nil {
			return errors.Errorf("unknown genre %q", name)
		}
		activity.GenreID = &genre.ID
	}

	if name := cell("event_type"); name != "" {
		eventType, err := srv.categoryRepo.FindEventTypeByName(ctx, name)
		if err != nil {
			return errors.Errorf("unknown event type %q", name)
		}
		activity.EventTypeID = &eventType.ID
	}

	if name := cell("price_category"); name != "" {
		priceCategory, err := srv.categoryRepo.FindPriceCategoryByName(ctx, name)
		if err != nil {
			return errors.Errorf("unknown price category %q", name)
		}
		activity.PriceCategoryID = &priceCategory.ID
	}

	return nil
}

// ExportActivities writes the full catalog as CSV in the import layout.
func (srv *adminService) ExportActivities(ctx context.Context, w io.Writer) error {
	activities, err := srv.activityRepo.ListAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list activities for export")
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportColumns); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	for _, activity := range activities {
		if err := writer.Write(exportRow(activity)); err != nil {
			return errors.Wrap(err, "failed to write CSV row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "failed to flush CSV output")
	}

	srv.log(ctx).Info("Exported activities", slog.Int("count", len(activities)))

	return nil
}

func exportRow(activity *entity.Activity) []string {
	categoryName := func(get func() string, present bool) string {
		if !present {
			return ""
		}

		return get()
	}

	return []string{
		strconv.FormatUint(activity.ID, 10),
		activity.Name,
		activity.Description,
		categoryName(func() string { return activity.PinType.Name }, activity.PinType != nil),
		categoryName(func() string { return activity.Genre.Name }, activity.Genre != nil),
		categoryName(func() string { return activity.EventType.Name }, activity.EventType != nil),
		categoryName(func() string { return activity.PriceCategory.Name }, activity.PriceCategory != nil),
		activity.Website,
		activity.Address,
		activity.URLAddress,
		activity.City,
		activity.Phone,
		activity.Email,
		formatOptionalFloat(activity.Latitude),
		formatOptionalFloat(activity.Longitude),
		strconv.FormatBool(activity.Live),
		activity.BroadcastedLive,
		activity.Event,
		activity.Mood,
		activity.Music,
		strconv.FormatBool(activity.IsActive),
		activity.CreatedAt.Format(time.RFC3339),
		activity.UpdatedAt.Format(time.RFC3339),
	}
}

func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func parseOptionalBool(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}

	return strconv.ParseBool(strings.ToLower(raw))
}

func formatOptionalFloat(value *float64) string {
	if value == nil {
		return ""
	}

	return strconv.FormatFloat(*value, 'f', -1, 64)
}
