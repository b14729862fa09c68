// Package crm defines the entity schemas of the CRM: the recognized fields,
// their validation constraints, and the defaults applied on creation. Every
// entity lives in its own collection; referential fields such as account_id or
// owner_id are opaque strings resolved by convention only.
package crm

// Collection names, one per entity.
const (
	CollectionUser     = "user"
	CollectionAccount  = "account"
	CollectionContact  = "contact"
	CollectionLead     = "lead"
	CollectionDeal     = "deal"
	CollectionTask     = "task"
	CollectionActivity = "activity"
	CollectionProduct  = "product"
)

// Collections returns every known collection in the order the schema
// endpoint reports them.
func Collections() []string {
	return []string{
		CollectionUser,
		CollectionAccount,
		CollectionContact,
		CollectionLead,
		CollectionDeal,
		CollectionTask,
		CollectionActivity,
		CollectionProduct,
	}
}
