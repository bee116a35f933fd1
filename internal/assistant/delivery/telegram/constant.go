package telegram

const msgStart = `👋 Welcome! I can answer questions about weather, adoptable pets, token markets and a simulated wallet.

Just type naturally ("weather in Tokyo", "any kittens near 90210", "price of SOL") or use /help for the command list.`

const msgHelp = `*Commands*

Weather
/weather <location> – current conditions
/forecast <location> [days] – multi-day outlook
/astronomy <location> – sunrise, sunset, moon
/aqi <location> – air quality

Pets
/pets <query> – adoptable animals, e.g. /pets small dogs in Austin, TX

Market
/price <token> – current price
/analyze <token> – price action and liquidity
/buy <amount> <token> – simulated buy quote
/sell <amount> <token> – simulated sell quote
/swapinfo <amount> <from> to <to> – conversion quote

Wallet (simulated)
/send <amount> <token> to <address>
/swap <amount> <from> to <to>
/balance – your holdings
/history – your past transfers

Plain messages work too; I will route them to the right topic.`

const msgProcessingError = "Something went wrong handling that request. Please try again."
