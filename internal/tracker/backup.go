package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Export produces the full backup document: schema version, every tracked
// request, and the remembered profile when one exists.
func (s *Store) Export() (Backup, error) {
	requests, err := s.All()
	if err != nil {
		return Backup{}, err
	}

	backup := Backup{
		SchemaVersion: SchemaVersion,
		ExportDate:    s.now().UTC(),
		Requests:      requests,
	}

	info, err := s.UserInfo()
	switch {
	case err == nil:
		backup.UserInfo = &info
	case errors.Is(err, ErrNotFound):
	default:
		return Backup{}, err
	}

	return backup, nil
}

// Import restores records from a backup document. Each record is persisted
// independently; a record that fails validation or persistence is reported
// in the result's error list by id without aborting the rest.
func (s *Store) Import(data []byte) (ImportResult, error) {
	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	var result ImportResult

	for _, req := range backup.Requests {
		if err := s.Save(req); err != nil {
			id := req.ID
			if id == "" {
				id = "(missing id)"
			}

			result.Errors = append(result.Errors, fmt.Sprintf("failed to import request %s: %v", id, err))

			continue
		}

		result.Imported++
	}

	if backup.UserInfo != nil {
		if err := s.SaveUserInfo(*backup.UserInfo); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to import profile: %v", err))
		}
	}

	return result, nil
}
