package store

// ExpiringItem is a tracked food item due to expire, read from the item
// collection. ID is the Firestore document ID and identifies the item across
// duplicate query results.
type ExpiringItem struct {
	ID          string `firestore:"-" json:"id"`
	Name        string `firestore:"name" json:"name"`
	HouseholdID string `firestore:"householdId" json:"householdId"`
	Expiry      string `firestore:"expiry" json:"expiry"`
}

// Household groups the users sharing tracked food items. Users keeps the
// document's list order.
type Household struct {
	ID    string   `firestore:"-"`
	Users []string `firestore:"users"`
}

// PushTarget is a push-capable endpoint registered for a user. ID is the
// target entry key, Token the FCM device token it delivers to.
type PushTarget struct {
	ID       string
	Token    string
	Provider string
}
