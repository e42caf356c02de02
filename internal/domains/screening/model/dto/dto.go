package dto

import (
	"cinema/internal/domains/screening/model"
	"cinema/shared"
	"cinema/shared/constant"
	gDto "cinema/shared/dto"
	gModel "cinema/shared/model"
	"cinema/shared/timezone"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type CreateScreeningRequest struct {
	RoomID    string    `json:"room_id"    validate:"required,uuid"`
	MovieID   string    `json:"movie_id"   validate:"required,uuid"`
	StartTime time.Time `json:"start_time" validate:"required"`
	Price     int       `json:"price"      validate:"gte=1"`
}

// ToModel leaves EndTime empty; it depends on the movie and is set while scheduling.
func (c *CreateScreeningRequest) ToModel(user string) model.Screening {
	return model.Screening{
		ID:        uuid.NewString(),
		RoomID:    c.RoomID,
		MovieID:   c.MovieID,
		StartTime: c.StartTime,
		Price:     c.Price,
		Metadata:  gModel.NewMetadata(user),
	}
}

type UpdateScreeningRequest struct {
	RoomID    *string    `json:"room_id"    validate:"omitempty,uuid"`
	MovieID   *string    `json:"movie_id"   validate:"omitempty,uuid"`
	StartTime *time.Time `json:"start_time" validate:"omitempty"`
	Price     *int       `json:"price"      validate:"omitempty,gte=1"`
}

// Apply merges the present fields over the stored screening.
func (u *UpdateScreeningRequest) Apply(screening model.Screening, user string) model.Screening {
	if u.RoomID != nil {
		screening.RoomID = *u.RoomID
	}

	if u.MovieID != nil {
		screening.MovieID = *u.MovieID
	}

	if u.StartTime != nil {
		screening.StartTime = *u.StartTime
	}

	if u.Price != nil {
		screening.Price = *u.Price
	}

	screening.ModifiedAt = timezone.Now()
	screening.ModifiedBy = user

	return screening
}

type ScreeningResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	MovieID   string `json:"movie_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Price     int    `json:"price"`
	gDto.Metadata
}

func (r *ScreeningResponse) FromModel(model model.Screening) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.MovieID = model.MovieID
	r.StartTime = timezone.Format(model.StartTime, constant.DateFormat)
	r.EndTime = timezone.Format(model.EndTime, constant.DateFormat)
	r.Price = model.Price
	r.Metadata.FromModel(model.Metadata)
}

type GetScreeningsResponse struct {
	Screenings []ScreeningResponse `json:"screenings"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetScreeningsResponse) FromModels(models []model.Screening, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Screenings = make([]ScreeningResponse, len(models))
	for i, mod := range models {
		r.Screenings[i].FromModel(mod)
	}
}

// ScreeningFilter narrows a screening listing. Date selects a calendar day in the application timezone.
type ScreeningFilter struct {
	RoomID  string `json:"room_id"  validate:"omitempty,uuid"`
	MovieID string `json:"movie_id" validate:"omitempty,uuid"`
	Date    string `json:"date"     validate:"omitempty,datetime=2006-01-02"`
}

func (f *ScreeningFilter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.RoomID = query.Get(model.FieldRoomID)
	f.MovieID = query.Get(model.FieldMovieID)
	f.Date = query.Get(constant.RequestParamDate)
}

// ToFilterGroup expects a validated filter.
func (f *ScreeningFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.RoomID != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{
			Field: model.FieldRoomID, Value: f.RoomID, Operator: gDto.FilterOperatorEq, Table: model.TableName,
		})
	}

	if f.MovieID != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{
			Field: model.FieldMovieID, Value: f.MovieID, Operator: gDto.FilterOperatorEq, Table: model.TableName,
		})
	}

	if day, err := timezone.Parse(constant.DayFormat, f.Date); err == nil {
		from := timezone.StartOfDay(day)

		group.Filters = append(group.Filters,
			gDto.Filter{
				Field: model.FieldStartTime, ArgName: "day_from", Value: from,
				Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName,
			},
			gDto.Filter{
				Field: model.FieldStartTime, ArgName: "day_to", Value: from.AddDate(0, 0, 1),
				Operator: gDto.FilterOperatorLess, Table: model.TableName,
			},
		)
	}

	return group
}
