package counter

import (
	"fmt"

	"gorm.io/gorm"
)

// Apply executes deltas against tx. Decrements clamp at zero: a counter
// already at 0 stays at 0 even if the edge set briefly disagrees.
func Apply(tx *gorm.DB, deltas []Delta) error {
	for _, d := range deltas {
		var err error
		if d.N >= 0 {
			q := fmt.Sprintf("UPDATE %s SET %s = %s + ? WHERE %s = ?", d.Table, d.Column, d.Column, d.Key)
			err = tx.Exec(q, d.N, d.ID).Error
		} else {
			q := fmt.Sprintf("UPDATE %s SET %s = GREATEST(%s - ?, 0) WHERE %s = ?", d.Table, d.Column, d.Column, d.Key)
			err = tx.Exec(q, -d.N, d.ID).Error
		}
		if err != nil {
			return err
		}
	}
	return nil
}
