package securestore

import (
	"encoding/json"
	"regexp"
	"time"

	"golang.org/x/exp/slog"
)

// Namespace — префикс всех ключей приложения. Clear и Stats трогают
// только ключи с этим префиксом, чужие данные в том же файле не задеваются.
const Namespace = "docvault_"

// TokenTTL — срок жизни токенов, сохранённых через SetSecureToken.
const TokenTTL = 24 * time.Hour

// KV — уровень хранения. Реализации: SQLiteKV (постоянный) и MemoryKV
// (сессионный).
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
}

// Options управляет записью одного значения.
type Options struct {
	// Encrypt обфусцирует сериализованное значение и дублирует запись
	// в сессионный уровень.
	Encrypt bool
	// Expiration — срок жизни записи. Ноль означает бессрочно.
	Expiration time.Duration
}

// record — конверт, в котором значение лежит в хранилище.
type record struct {
	Value      string `json:"value"`
	Timestamp  int64  `json:"timestamp"`
	Expiration int64  `json:"expiration,omitempty"`
	Encrypted  bool   `json:"encrypted"`
}

// Stats — сводка по занимаемому месту.
type Stats struct {
	Entries    int `json:"entries"`
	TotalBytes int `json:"total_bytes"`
}

// Значения, похожие на попытку внедрения скрипта, не сохраняются вовсе.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
}

// Store — клиентский кэш с двумя уровнями: постоянным и сессионным.
// Методы записи никогда не возвращают ошибку наружу: отказ кэша не должен
// ломать сценарий пользователя, он просто логируется.
type Store struct {
	durable KV
	session KV
	log     *slog.Logger
	now     func() time.Time
}

func New(durable, session KV, log *slog.Logger) *Store {
	return &Store{
		durable: durable,
		session: session,
		log:     log,
		now:     time.Now,
	}
}

// SetItem сохраняет значение под ключом key (без префикса — он добавляется
// здесь). Возвращает false, если значение отклонено или запись не удалась.
func (s *Store) SetItem(key string, value any, opts Options) bool {
	if value == nil {
		s.log.Debug("отклонено пустое значение", "key", key)
		return false
	}

	serialized, err := json.Marshal(value)
	if err != nil {
		s.log.Error("ошибка сериализации значения", "key", key, "error", err)
		return false
	}

	for _, p := range injectionPatterns {
		if p.Match(serialized) {
			s.log.Warn("отклонено подозрительное значение", "key", key)
			return false
		}
	}

	rec := record{
		Value:     string(serialized),
		Timestamp: s.now().UnixMilli(),
		Encrypted: opts.Encrypt,
	}
	if opts.Expiration > 0 {
		rec.Expiration = opts.Expiration.Milliseconds()
	}
	if opts.Encrypt {
		rec.Value = Obfuscate(rec.Value)
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		s.log.Error("ошибка сериализации записи", "key", key, "error", err)
		return false
	}

	if err := s.durable.Set(Namespace+key, string(raw)); err != nil {
		s.log.Error("ошибка записи в постоянное хранилище", "key", key, "error", err)
		return false
	}

	// Обфусцированные записи дублируются в сессионный уровень: он
	// переживёт порчу файла базы до конца сеанса.
	if opts.Encrypt {
		if err := s.session.Set(Namespace+key, string(raw)); err != nil {
			s.log.Warn("ошибка записи в сессионное хранилище", "key", key, "error", err)
		}
	}

	return true
}

// GetItem читает значение: сначала постоянный уровень, затем сессионный.
// Просроченные и нечитаемые записи считаются отсутствующими; просроченные
// попутно удаляются.
func (s *Store) GetItem(key string) (any, bool) {
	raw, ok := s.durable.Get(Namespace + key)
	if !ok {
		raw, ok = s.session.Get(Namespace + key)
	}
	if !ok {
		return nil, false
	}

	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		s.log.Warn("нечитаемая запись в кэше", "key", key, "error", err)
		return nil, false
	}

	if s.expired(rec) {
		s.RemoveItem(key)
		return nil, false
	}

	payload := rec.Value
	if rec.Encrypted {
		payload = Deobfuscate(payload)
	}

	var value any
	if err := json.Unmarshal([]byte(payload), &value); err != nil {
		s.log.Warn("нечитаемое значение в кэше", "key", key, "error", err)
		return nil, false
	}

	return value, true
}

// RemoveItem удаляет ключ из обоих уровней. Отсутствие ключа не ошибка.
func (s *Store) RemoveItem(key string) {
	if err := s.durable.Delete(Namespace + key); err != nil {
		s.log.Warn("ошибка удаления из постоянного хранилища", "key", key, "error", err)
	}
	if err := s.session.Delete(Namespace + key); err != nil {
		s.log.Warn("ошибка удаления из сессионного хранилища", "key", key, "error", err)
	}
}

// Clear удаляет все ключи приложения, не трогая чужие записи.
func (s *Store) Clear() {
	for _, kv := range []KV{s.durable, s.session} {
		keys, err := kv.Keys(Namespace)
		if err != nil {
			s.log.Warn("ошибка перечисления ключей", "error", err)
			continue
		}
		for _, key := range keys {
			if err := kv.Delete(key); err != nil {
				s.log.Warn("ошибка удаления ключа", "key", key, "error", err)
			}
		}
	}
}

// Stats возвращает количество записей приложения и их суммарный размер
// в байтах по обоим уровням (дубликаты считаются один раз).
func (s *Store) Stats() Stats {
	seen := make(map[string]struct{})
	var stats Stats

	for _, kv := range []KV{s.durable, s.session} {
		keys, err := kv.Keys(Namespace)
		if err != nil {
			s.log.Warn("ошибка перечисления ключей", "error", err)
			continue
		}
		for _, key := range keys {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			raw, ok := kv.Get(key)
			if !ok {
				continue
			}
			stats.Entries++
			stats.TotalBytes += len(raw)
		}
	}

	return stats
}

func (s *Store) expired(rec record) bool {
	if rec.Expiration <= 0 {
		return false
	}
	age := s.now().UnixMilli() - rec.Timestamp
	return age > rec.Expiration
}

// SetUserPreference сохраняет пользовательскую настройку открытым текстом
// и бессрочно.
func (s *Store) SetUserPreference(name string, value any) bool {
	return s.SetItem("pref_"+name, value, Options{})
}

func (s *Store) GetUserPreference(name string) (any, bool) {
	return s.GetItem("pref_" + name)
}

// SetSecureToken сохраняет токен обфусцированным и со сроком жизни TokenTTL.
func (s *Store) SetSecureToken(name, token string) bool {
	return s.SetItem("token_"+name, token, Options{
		Encrypt:    true,
		Expiration: TokenTTL,
	})
}

// GetSecureToken возвращает токен или false, если он отсутствует, просрочен
// или оказался не строкой.
func (s *Store) GetSecureToken(name string) (string, bool) {
	value, ok := s.GetItem("token_" + name)
	if !ok {
		return "", false
	}

	token, ok := value.(string)
	if !ok {
		return "", false
	}

	return token, true
}

func (s *Store) RemoveSecureToken(name string) {
	s.RemoveItem("token_" + name)
}
