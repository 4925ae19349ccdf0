/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/sensorcore
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package store persists exposure provenance: which frame ID was captured, under what
// conditions, and when. It is deliberately separate from the sensor core - the core never
// touches a database.
package store

/*****************************************************************************************************************/

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

/*****************************************************************************************************************/

// FrameLog is one row of exposure provenance: a frame's identity, the conditions it was captured
// under, and a fingerprint of the sensor geometry that produced it.
type FrameLog struct {
	gorm.Model

	FrameID      string `gorm:"uniqueIndex"`
	ExposureTime float64
	Temperature  float64
	WidthPx      int
	HeightPx     int
	GeometryHash string
	CapturedAt   time.Time
}

/*****************************************************************************************************************/

// Store wraps a SQLite-backed gorm.DB holding the FrameLog table.
type Store struct {
	db *gorm.DB
}

/*****************************************************************************************************************/

// Open opens (or creates) the SQLite database at path and ensures the FrameLog table exists.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&FrameLog{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

/*****************************************************************************************************************/

// RecordExposure inserts a provenance row for a completed exposure.
func (s *Store) RecordExposure(log FrameLog) error {
	return s.db.Create(&log).Error
}

/*****************************************************************************************************************/

// FrameByID looks up the provenance row for a given frame ID.
func (s *Store) FrameByID(frameID string) (*FrameLog, error) {
	var log FrameLog

	if err := s.db.Where("frame_id = ?", frameID).First(&log).Error; err != nil {
		return nil, err
	}

	return &log, nil
}

/*****************************************************************************************************************/

// Close releases the underlying database connection.
func (s *Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

/*****************************************************************************************************************/
