package utils

type Tabler interface {
	TableName() string
}

// Repository is the common persistence interface shared by all entity
// repositories. Tx is the transaction type of the underlying driver. Passing
// the zero value of Tx to a method makes the repository fall back to its own
// connection.
type Repository[ID any, T Tabler, Tx any] interface {
	All() ([]T, error)
	Create(tx Tx, t *T) error
	CreateBatch(tx Tx, ts []T) error
	Read(id ID) (T, error)
	Delete(tx Tx, id ID) error
	DeleteBatch(tx Tx, ts []T) error
	List(ids []ID) ([]T, error)
	Transaction(func(tx Tx) error) error
	Begin() Tx
	GetDB(tx Tx) Tx

	Save(tx Tx, t *T) error
	SaveBatch(tx Tx, ts []T) error
}
