package entity

type College struct {
	ID   string `json:"id" firestore:"id"`
	City string `json:"city" firestore:"city"`
	Name string `json:"name" firestore:"name"`
}
