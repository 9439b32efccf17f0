package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripconcierge/internal/models/trip_models"
)

// tripRecord is the persisted shape: a few queryable columns plus the full
// trip document as JSONB. Position preserves history order across replace.
type tripRecord struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position            int       `gorm:"index"`
	DepartureLocation   string
	Destination         string
	StartDate           int64
	EndDate             int64
	NumberOfTravelers   int
	Status              string
	DietaryRestrictions pq.StringArray `gorm:"type:text[]"`
	PreferredAirlines   pq.StringArray `gorm:"type:text[]"`
	Payload             datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt           int64          `gorm:"autoCreateTime"`
	UpdatedAt           int64          `gorm:"autoUpdateTime"`
}

func (tripRecord) TableName() string { return "trips" }

type PostgresTripStore struct {
	db *gorm.DB
}

func NewPostgresTripStore(db *gorm.DB) (*PostgresTripStore, error) {
	if err := db.AutoMigrate(&tripRecord{}); err != nil {
		return nil, fmt.Errorf("migrate trips table: %w", err)
	}
	return &PostgresTripStore{db: db}, nil
}

func (s *PostgresTripStore) Load(ctx context.Context) ([]trip_models.Trip, error) {
	var records []tripRecord
	if err := s.db.WithContext(ctx).Order("position asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load trip history: %w", err)
	}

	trips := make([]trip_models.Trip, 0, len(records))
	for _, rec := range records {
		var trip trip_models.Trip
		if err := json.Unmarshal(rec.Payload, &trip); err != nil {
			return nil, fmt.Errorf("decode trip %s: %w", rec.ID, err)
		}
		trips = append(trips, trip)
	}
	return trips, nil
}

func (s *PostgresTripStore) Save(ctx context.Context, trips []trip_models.Trip) error {
	records := make([]tripRecord, 0, len(trips))
	for i, trip := range trips {
		payload, err := json.Marshal(trip)
		if err != nil {
			return fmt.Errorf("encode trip %s: %w", trip.ID, err)
		}
		records = append(records, tripRecord{
			ID:                  trip.ID,
			Position:            i,
			DepartureLocation:   trip.Request.DepartureLocation,
			Destination:         trip.Request.Destination,
			StartDate:           trip.Request.StartDate.Unix(),
			EndDate:             trip.Request.EndDate.Unix(),
			NumberOfTravelers:   trip.Request.NumberOfTravelers,
			Status:              string(trip.Status),
			DietaryRestrictions: trip.Request.Preferences.DietaryRestrictions,
			PreferredAirlines:   trip.Request.Preferences.PreferredAirlines,
			Payload:             payload,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&tripRecord{}).Error; err != nil {
			return fmt.Errorf("clear trip history: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&records).Error; err != nil {
			return fmt.Errorf("write trip history: %w", err)
		}
		return nil
	})
}
