package engine

import (
	"encoding/json"

	"questbook/internal/models"
	"questbook/internal/storage"
)

// Records returns all completion records for the user, dropping entries
// that fail shape validation. The stored order is insertion order; callers
// sort for display.
func (s *Service) Records(token string) []models.CompletionRecord {
	if token == "" {
		return nil
	}
	var records []models.CompletionRecord
	if !s.getJSON(storage.CompletionRecordsKey(token), &records) {
		return nil
	}
	valid := records[:0]
	for _, r := range records {
		if r.Valid() {
			valid = append(valid, r)
		}
	}
	return valid
}

// Record looks up one completion record by id.
func (s *Service) Record(token string, id int) (models.CompletionRecord, error) {
	for _, r := range s.Records(token) {
		if r.ID == id {
			return r, nil
		}
	}
	return models.CompletionRecord{}, ErrRecordNotFound
}

// AppendRecord assigns the next ledger id and persists the record. Ids are
// unique and strictly increasing per user: max(existing)+1, starting at 1.
func (s *Service) AppendRecord(token string, record models.CompletionRecord) (models.CompletionRecord, error) {
	if token == "" {
		return models.CompletionRecord{}, ErrNoUser
	}
	if record.Day <= 0 {
		return models.CompletionRecord{}, ErrInvalidDay
	}

	records := s.Records(token)

	maxID := 0
	for _, r := range records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	record.ID = maxID + 1

	records = append(records, record)
	if err := s.persistRecords(token, records); err != nil {
		return models.CompletionRecord{}, err
	}
	return record, nil
}

// RemoveRecord deletes a record from the ledger and returns it.
func (s *Service) RemoveRecord(token string, id int) (models.CompletionRecord, error) {
	if token == "" {
		return models.CompletionRecord{}, ErrNoUser
	}

	records := s.Records(token)
	for i, r := range records {
		if r.ID == id {
			updated := append(records[:i:i], records[i+1:]...)
			if err := s.persistRecords(token, updated); err != nil {
				return models.CompletionRecord{}, err
			}
			return r, nil
		}
	}
	return models.CompletionRecord{}, ErrRecordNotFound
}

// UpdateRecordDuration is the one sanctioned mutation of a written record.
func (s *Service) UpdateRecordDuration(token string, id, newDuration int) error {
	if token == "" {
		return ErrNoUser
	}
	if newDuration < 0 {
		return ErrInvalidDuration
	}

	records := s.Records(token)
	for i := range records {
		if records[i].ID == id {
			records[i].Duration = newDuration
			return s.persistRecords(token, records)
		}
	}
	return ErrRecordNotFound
}

func (s *Service) persistRecords(token string, records []models.CompletionRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.store.Set(storage.CompletionRecordsKey(token), string(data))
}
