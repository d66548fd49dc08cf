package friend

import (
	"testing"

	"roamly/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyContact(t *testing.T) {
	cases := []struct {
		contact string
		kind    string
		ok      bool
	}{
		{"ada@example.com", models.ContactKindEmail, true},
		{"first.last@sub.domain.org", models.ContactKindEmail, true},
		{"+33612345678", models.ContactKindPhone, true},
		{"0612345678", models.ContactKindPhone, true},
		{"+1 (415) 555-0134", models.ContactKindPhone, true},
		{"not a contact", "", false},
		{"@example.com", "", false},
		{"ada@example", "", false},
		{"+", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.contact, func(t *testing.T) {
			kind, ok := ClassifyContact(tc.contact)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.kind, kind)
		})
	}
}
