package bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// dispatcher раскладывает апдейты по очередям отдельных пользователей.
//
// Инвариант: апдейты одного user_id обрабатываются строго в порядке
// поступления и никогда не перекрываются — стадия диалога читается,
// валидируется и продвигается как одно целое. Апдейты разных пользователей
// обрабатываются параллельно.
//
// Наличие ключа в queues означает живой воркер этого пользователя.
// Воркер удаляет ключ и завершается, опустошив очередь, так что простаивающие
// пользователи горутин не держат.
type dispatcher struct {
	mu     sync.Mutex
	queues map[int64][]tgbotapi.Update
	handle func(tgbotapi.Update)
	wg     sync.WaitGroup
}

func newDispatcher(handle func(tgbotapi.Update)) *dispatcher {
	return &dispatcher{
		queues: make(map[int64][]tgbotapi.Update),
		handle: handle,
	}
}

// Dispatch ставит апдейт в очередь пользователя и при необходимости
// запускает для него воркер.
func (d *dispatcher) Dispatch(userID int64, update tgbotapi.Update) {
	d.mu.Lock()
	queue, running := d.queues[userID]
	d.queues[userID] = append(queue, update)
	d.mu.Unlock()

	if !running {
		d.wg.Add(1)
		go d.drain(userID)
	}
}

func (d *dispatcher) drain(userID int64) {
	defer d.wg.Done()

	for {
		d.mu.Lock()
		queue := d.queues[userID]
		if len(queue) == 0 {
			delete(d.queues, userID)
			d.mu.Unlock()

			return
		}
		update := queue[0]
		d.queues[userID] = queue[1:]
		d.mu.Unlock()

		d.handle(update)
	}
}

// Wait блокируется до завершения всех запущенных воркеров.
// Используется при остановке: новые апдейты к этому моменту уже не поступают.
func (d *dispatcher) Wait() {
	d.wg.Wait()
}
