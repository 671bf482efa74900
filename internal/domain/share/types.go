package share

type StorageType string

const (
	StorageRefrigerated StorageType = "REFRIGERATED"
	StorageFrozen       StorageType = "FROZEN"
	StorageRoomTemp     StorageType = "ROOM_TEMPERATURE"
)

func (s StorageType) String() string {
	return string(s)
}

func (s StorageType) IsValid() bool {
	switch s {
	case StorageRefrigerated, StorageFrozen, StorageRoomTemp:
		return true
	default:
		return false
	}
}
