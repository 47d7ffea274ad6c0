package service

// PasswordHasher 비밀번호 단방향 해시 및 검증
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
