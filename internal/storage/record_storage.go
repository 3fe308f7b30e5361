package storage

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/swipesafe/backend/internal/models"
)

func CreateSessionRecord(userID int, sessionID, scenarioID string, turns int) error {
	stmt, err := db.Prepare("INSERT INTO session_records(user_id, session_id, scenario_id, turns, created_at) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(userID, sessionID, scenarioID, turns, time.Now().UTC().Format("2006-01-02 15:04:05"))
	return err
}

func GetSessionRecordsByUserID(userID int) ([]models.SessionRecord, error) {
	query := `
		SELECT id, session_id, scenario_id, turns, created_at
		FROM session_records
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.SessionRecord
	for rows.Next() {
		r := models.SessionRecord{UserID: userID}
		var createdStr string // sqlite stores timestamps as text

		if err := rows.Scan(&r.ID, &r.SessionID, &r.ScenarioID, &r.Turns, &createdStr); err != nil {
			return nil, err
		}

		parsedTime, err := time.Parse("2006-01-02 15:04:05", createdStr)
		if err != nil {
			log.Warn().Err(err).Int("record", r.ID).Msg("unparseable created_at, leaving zero time")
		}
		r.CreatedAt = parsedTime

		records = append(records, r)
	}
	return records, rows.Err()
}
