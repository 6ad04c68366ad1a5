package memory

import (
	"GameAdmin/internal/account/domain"
	"context"
	"strings"
	"sync"
)

// Store 是账号数据的内存实现，同时满足 UserRepo / LoginHistoryRepo / LoginLastRepo。
type Store struct {
	mu       sync.RWMutex
	nextUId  int
	nextLLId int
	users    map[int]domain.User
	history  []domain.LoginHistory
	last     map[int]domain.LoginLast
}

func NewStore() *Store {
	return &Store{
		users: make(map[int]domain.User),
		last:  make(map[int]domain.LoginLast),
	}
}

func (s *Store) GetUserByUserName(_ context.Context, username string) (*domain.User, error) {
	return s.findUser(func(u domain.User) bool { return u.Username == username }, "username", username)
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	return s.findUser(func(u domain.User) bool { return strings.EqualFold(u.Email, email) }, "email", email)
}

func (s *Store) GetUserByUId(_ context.Context, uid int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[uid]
	if !ok {
		return nil, domain.ErrUserNotFound.WithData("uid", uid)
	}
	return &u, nil
}

func (s *Store) findUser(match func(domain.User) bool, key string, value any) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound.WithData(key, value)
}

func (s *Store) Create(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, exist := range s.users {
		if exist.Username == u.Username || strings.EqualFold(exist.Email, u.Email) {
			return domain.ErrUserExist.WithData("username", u.Username)
		}
	}
	s.nextUId++
	u.UId = s.nextUId
	s.users[u.UId] = *u
	return nil
}

// SetStatus 修改用户状态，供运维脚本与测试使用。
func (s *Store) SetStatus(uid, status int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[uid]
	if !ok {
		return false
	}
	u.Status = status
	s.users[uid] = u
	return true
}

func (s *Store) Save(_ context.Context, history domain.LoginHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	history.Id = len(s.history) + 1
	s.history = append(s.history, history)
	return nil
}

// History 返回某用户的登录历史（按写入顺序）。
func (s *Store) History(uid int) []domain.LoginHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.LoginHistory
	for _, h := range s.history {
		if h.UId == uid {
			out = append(out, h)
		}
	}
	return out
}

// LastLogins 把 login_last 暴露成独立的 repo，避免与 login_history 的 Save 冲突。
func (s *Store) LastLogins() *LastLoginRepo {
	return &LastLoginRepo{s: s}
}

type LastLoginRepo struct {
	s *Store
}

func (r *LastLoginRepo) GetLoginLast(_ context.Context, uid int) (domain.LoginLast, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ll, ok := r.s.last[uid]
	if !ok {
		return domain.LoginLast{}, domain.ErrLastLoginNotFound.WithData("uid", uid)
	}
	return ll, nil
}

func (r *LastLoginRepo) Save(_ context.Context, ll domain.LoginLast) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if ll.Id == 0 {
		if exist, ok := r.s.last[ll.UId]; ok {
			ll.Id = exist.Id
		} else {
			r.s.nextLLId++
			ll.Id = r.s.nextLLId
		}
	}
	r.s.last[ll.UId] = ll
	return nil
}
