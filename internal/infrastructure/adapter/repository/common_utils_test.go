package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier_Classify(t *testing.T) {
	c := NewErrorClassifier()

	tests := []struct {
		msg  string
		want ErrorType
	}{
		{msg: `ERROR: duplicate key value violates unique constraint "accounts_pkey"`, want: DuplicateKeyError},
		{msg: "ERROR: could not serialize access due to concurrent update", want: LockError},
		{msg: "ERROR: deadlock detected", want: LockError},
		{msg: "ERROR: numeric field overflow", want: OverflowError},
		{msg: "read tcp: i/o timeout", want: TransientError},
		{msg: "dial tcp 10.0.0.1:5432", want: ConnectionError},
		{msg: `new row violates check constraint "chk_accounts_balance_non_negative"`, want: ConstraintError},
		{msg: "something else", want: UnknownError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(errors.New(tt.msg)), tt.msg)
	}
	assert.Equal(t, ErrorType(""), c.Classify(nil))
}
