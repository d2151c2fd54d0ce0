package repositories

import "gorm.io/gorm"

type Repos struct {
	Project      ProjectRepo
	Proposal     ProposalRepo
	User         UserRepo
	Freelancer   FreelancerRepo
	Portfolio    PortfolioRepo
	Rating       RatingRepo
	Payment      PaymentRepo
	Notification NotificationRepo
	Tx           TxRunner
}

// TxRunner scopes a set of repository calls to one database
// transaction. The callback receives repos bound to that transaction.
type TxRunner interface {
	InTx(fn func(r *Repos) error) error
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		Project:      &DBProjectRepo{db: db},
		Proposal:     &DBProposalRepo{db: db},
		User:         &DBUserRepo{db: db},
		Freelancer:   &DBFreelancerRepo{db: db},
		Portfolio:    &DBPortfolioRepo{db: db},
		Rating:       &DBRatingRepo{db: db},
		Payment:      &DBPaymentRepo{db: db},
		Notification: &DBNotificationRepo{db: db},
		Tx:           &gormTxRunner{db: db},
	}
}

type gormTxRunner struct {
	db *gorm.DB
}

func (t *gormTxRunner) InTx(fn func(r *Repos) error) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
