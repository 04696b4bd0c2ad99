package repository

// 統一管理所有 MongoDB repository
type MongoDBRepository struct {
	orgTreeRepository *OrgTreeRepository
}

// 建立 MongoDB repository 物件
func NewMongoDBRepository(
	orgTreeRepository *OrgTreeRepository,
) *MongoDBRepository {
	return &MongoDBRepository{
		orgTreeRepository: orgTreeRepository,
	}
}

func (repository *MongoDBRepository) OrgTree() *OrgTreeRepository {
	return repository.orgTreeRepository
}
