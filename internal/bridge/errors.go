package bridge

import (
	"errors"
	"fmt"

	"github.com/dmx/dmxmoney/internal/database"
)

// The product ships in French; these are the exact strings the shell shows.
const (
	msgForeignKey    = "Impossible de supprimer cet élément car il est utilisé ailleurs."
	msgAlreadyExists = "Un élément avec cet identifiant existe déjà."
)

// opError converts a store error into the single descriptive string the
// shell receives. contexte names the attempted operation for the generic
// case; constraint violations get their own fixed wording.
func opError(err error, contexte string) error {
	switch {
	case errors.Is(err, database.ErrForeignKey):
		return errors.New(msgForeignKey)
	case errors.Is(err, database.ErrAlreadyExists):
		return errors.New(msgAlreadyExists)
	}
	return fmt.Errorf("Erreur BDD (%s): %v", contexte, err)
}
