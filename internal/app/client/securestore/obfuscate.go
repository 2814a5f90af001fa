package securestore

import "encoding/base64"

// Сдвиг символов после первого base64-прохода. Подбор значения не имеет
// значения: преобразование обратимо по построению.
const shift = 3

// Obfuscate применяет двухступенчатое обратимое преобразование:
// текст -> base64 -> посимвольный сдвиг -> base64.
//
// Это запутывание от случайного взгляда, НЕ криптографическая защита:
// преобразование тривиально обратимо любым, кто прочитал этот файл.
// Для настоящей конфиденциальности нужен AEAD-примитив, не этот код.
func Obfuscate(s string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(s))

	shifted := make([]byte, len(encoded))
	for i := 0; i < len(encoded); i++ {
		shifted[i] = encoded[i] + shift
	}

	return base64.StdEncoding.EncodeToString(shifted)
}

// Deobfuscate обращает Obfuscate. Некорректный вход возвращается как есть:
// потеря кэшированного значения хуже, чем показ необфусцированного.
func Deobfuscate(s string) string {
	shifted, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return s
	}

	decoded := make([]byte, len(shifted))
	for i := 0; i < len(shifted); i++ {
		decoded[i] = shifted[i] - shift
	}

	original, err := base64.StdEncoding.DecodeString(string(decoded))
	if err != nil {
		return s
	}

	return string(original)
}
