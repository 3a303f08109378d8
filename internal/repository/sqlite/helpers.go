package sqlite

import "github.com/lingualearn/linguaflash/internal/models"

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWord(row rowScanner) (models.Word, error) {
	var w models.Word
	var typ string
	err := row.Scan(&w.ID, &w.UserID, &w.Term, &w.Translation, &w.Phonetic, &w.Category, &typ,
		&w.MasteryLevel, &w.TimesCorrect, &w.IsMastered, &w.LastReviewed, &w.CreatedAt)
	if err != nil {
		return models.Word{}, err
	}
	w.Type = models.WordType(typ)
	return w, nil
}
