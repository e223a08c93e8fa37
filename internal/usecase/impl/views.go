package impl

import (
	"time"

	"nightmap/internal/domain/entity"
	"nightmap/internal/domain/service"
	"nightmap/internal/usecase"
)

func toAccountView(account *entity.Account) *usecase.AccountView {
	return &usecase.AccountView{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
	}
}

// toProfileView flattens a profile for API output. The avatar falls back to
// the configured placeholder when no picture is stored, and the active flag
// is evaluated against the given time.
func toProfileView(profile *entity.UserProfile, storage service.BlobStorage, defaultAvatarURL string, now time.Time) *usecase.ProfileView {
	avatarURL := defaultAvatarURL
	if profile.Avatar != "" && storage != nil {
		avatarURL = storage.URL(profile.Avatar)
	}

	genres := make([]usecase.CategoryView, 0, len(profile.FavoriteGenres))
	for _, genre := range profile.FavoriteGenres {
		genres = append(genres, usecase.CategoryView{ID: genre.ID, Name: genre.Name})
	}

	var mood *usecase.CategoryView
	if profile.MoodForTonight != nil {
		mood = &usecase.CategoryView{ID: profile.MoodForTonight.ID, Name: profile.MoodForTonight.Name}
	}

	return &usecase.ProfileView{
		UUID:           profile.UUID.String(),
		Nickname:       profile.Nickname,
		AvatarURL:      avatarURL,
		FavoriteGenres: genres,
		MoodForTonight: mood,
		BirthDate:      profile.BirthDate.Format("2006-01-02"),
		IsActive:       profile.ActiveAt(now),
	}
}

// toActivityView flattens an activity, materializing category names and the
// stored image key into presentable strings.
func toActivityView(activity *entity.Activity, storage service.BlobStorage) *usecase.ActivityView {
	view := &usecase.ActivityView{
		ID:              activity.ID,
		Name:            activity.Name,
		Description:     activity.Description,
		Website:         activity.Website,
		Address:         activity.Address,
		URLAddress:      activity.URLAddress,
		City:            activity.City,
		Phone:           activity.Phone,
		Email:           activity.Email,
		Latitude:        activity.Latitude,
		Longitude:       activity.Longitude,
		Live:            activity.Live,
		BroadcastedLive: activity.BroadcastedLive,
		Event:           activity.Event,
		Mood:            activity.Mood,
		Music:           activity.Music,
		IsActive:        activity.IsActive,
	}

	if activity.PinType != nil {
		view.PinType = activity.PinType.Name
	}
	if activity.Genre != nil {
		view.Genre = activity.Genre.Name
	}
	if activity.EventType != nil {
		view.EventType = activity.EventType.Name
	}
	if activity.PriceCategory != nil {
		view.PriceCategory = activity.PriceCategory.Name
	}
	if activity.Image != "" && storage != nil {
		view.ImageURL = storage.URL(activity.Image)
	}

	return view
}

func toConcertView(event *entity.ConcertEvent) *usecase.ConcertView {
	return &usecase.ConcertView{
		ID:        event.ID,
		Name:      event.Name,
		Latitude:  event.Latitude,
		Longitude: event.Longitude,
		Date:      event.Date,
	}
}
