package handlers

var indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>copy2card - turn reviews into share-ready cards</title>
	<style>
		body { font-family: -apple-system, BlinkMacSystemFont, sans-serif; max-width: 760px; margin: 60px auto; padding: 0 24px; color: #111; }
		a.button { display: inline-block; border: 1px solid #111; border-radius: 999px; padding: 10px 26px; text-decoration: none; color: #111; }
		a.button:hover { background: #111; color: #fff; }
		p.muted { color: #6b7280; }
		footer { margin-top: 80px; font-size: 12px; color: #9ca3af; }
	</style>
</head>
<body>
	<h1>copy2card</h1>
	<p class="muted">Paste real customer praise, preview a clean testimonial card, and export it as a PNG. Free accounts include a watermark; credits unlock watermark-free downloads.</p>
	<a class="button" href="/auth/google/login">Sign in with Google</a>
	<footer>copy2card {{VERSION}}</footer>
</body>
</html>`

var dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>Dashboard - copy2card</title>
	<script src="https://cdn.jsdelivr.net/npm/html2canvas@1.4.1/dist/html2canvas.min.js"></script>
	<style>
		body { font-family: -apple-system, BlinkMacSystemFont, sans-serif; max-width: 960px; margin: 0 auto; padding: 24px; color: #111; }
		nav { display: flex; justify-content: space-between; align-items: center; margin-bottom: 32px; }
		nav .credits { font-size: 14px; color: #374151; }
		textarea { width: 100%; min-height: 180px; border: 1px solid #111; border-radius: 16px; padding: 16px; font-size: 15px; resize: vertical; }
		button { border: 1px solid #111; border-radius: 999px; padding: 8px 22px; background: #fff; cursor: pointer; font-size: 14px; margin-right: 8px; }
		button:hover { background: #111; color: #fff; }
		#card { width: 480px; border: 1px solid #111; border-radius: 24px; padding: 32px; margin-top: 24px; background: #fff; position: relative; }
		#card blockquote { font-size: 18px; margin: 0; white-space: pre-wrap; }
		#watermark { position: absolute; bottom: 12px; right: 20px; font-size: 12px; color: #9ca3af; }
		#status { color: #6b7280; font-size: 14px; min-height: 20px; }
		a { color: #111; }
	</style>
</head>
<body>
	<nav>
		<strong>copy2card</strong>
		<span>
			<span class="credits">Credits: <span id="credits">–</span></span>
			&nbsp;<a href="/payment">Upgrade</a>
			&nbsp;<form method="post" action="/auth/logout" style="display:inline"><button type="submit">Sign out</button></form>
		</span>
	</nav>
	<h1>Welcome back, {{EMAIL}}</h1>
	<p>Paste customer feedback, build a preview, and download the card as a PNG. Downloads spend one credit; without credits the card keeps its watermark.</p>
	<textarea id="review" placeholder="Paste customer feedback here."></textarea>
	<p>
		<button id="preview-btn" type="button">Build preview</button>
		<button id="download-btn" type="button">Download PNG</button>
	</p>
	<p id="status"></p>
	<div id="card">
		<blockquote id="card-text">Your review will appear here.</blockquote>
		<span id="watermark">made with copy2card</span>
	</div>
	<script>
		const statusEl = document.getElementById('status');
		const creditsEl = document.getElementById('credits');
		let credits = null;

		function applyPolicy() {
			// Same predicate the server enforces: null or <= 0 keeps the watermark.
			const watermark = credits === null || credits <= 0;
			document.getElementById('watermark').style.display = watermark ? 'block' : 'none';
			creditsEl.textContent = credits === null ? '?' : credits;
		}

		async function fetchCredits() {
			try {
				const res = await fetch('/api/credits/get');
				if (!res.ok) throw new Error('fetch credits: ' + res.status);
				credits = (await res.json()).remainingCredits;
			} catch (err) {
				console.error(err);
				credits = null;
			}
			applyPolicy();
			return credits;
		}

		document.getElementById('review').addEventListener('input', (event) => {
			document.getElementById('card-text').textContent = event.target.value || 'Your review will appear here.';
		});

		async function renderCard() {
			try {
				const canvas = await html2canvas(document.getElementById('card'), { scale: 2, backgroundColor: '#ffffff' });
				return canvas.toDataURL('image/png');
			} catch (err) {
				console.error(err);
				statusEl.textContent = 'Could not generate preview. Please try again.';
				return null;
			}
		}

		document.getElementById('preview-btn').addEventListener('click', async () => {
			statusEl.textContent = 'Generating...';
			const url = await renderCard();
			if (url) statusEl.textContent = 'Preview ready.';
		});

		document.getElementById('download-btn').addEventListener('click', async () => {
			statusEl.textContent = '';
			const balance = await fetchCredits();
			if (balance === null || balance <= 0) {
				statusEl.textContent = 'You need credits to download. Upgrade or top up first.';
				return;
			}
			const url = await renderCard();
			if (!url) return;

			const link = document.createElement('a');
			link.href = url;
			link.download = 'copy2card-' + Date.now() + '.png';
			link.click();

			try {
				const res = await fetch('/api/credits/decrement', { method: 'POST' });
				if (!res.ok) throw new Error('decrement failed: ' + res.status);
				credits = (await res.json()).remainingCredits;
				applyPolicy();
				statusEl.textContent = 'Download complete. Credit deducted.';
			} catch (err) {
				console.error(err);
				statusEl.textContent = 'Download finished, but credit update failed. Refresh to confirm.';
			}
		});

		fetchCredits();
	</script>
</body>
</html>`

var paymentHTML = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>Upgrade - copy2card</title>
	<script src="https://cdn.paddle.com/paddle/v2/paddle.js"></script>
	<style>
		body { font-family: -apple-system, BlinkMacSystemFont, sans-serif; max-width: 760px; margin: 0 auto; padding: 24px; color: #111; }
		nav { display: flex; justify-content: space-between; margin-bottom: 32px; }
		.plan { border: 1px solid #111; border-radius: 24px; padding: 32px; }
		button { border: 1px solid #111; border-radius: 999px; padding: 10px 26px; background: #fff; cursor: pointer; font-size: 14px; }
		button:hover { background: #111; color: #fff; }
		#status { color: #6b7280; font-size: 14px; min-height: 20px; }
		a { color: #111; }
	</style>
</head>
<body>
	<nav>
		<strong>copy2card</strong>
		<a href="/dashboard">Back to dashboard</a>
	</nav>
	<h1>Pro plan</h1>
	<div class="plan">
		<h2>copy2card Pro</h2>
		<p>50 download credits - no watermark - priority support</p>
		<p><strong>$19</strong></p>
		<button id="checkout-btn" type="button">Pay with Paddle</button>
		<p id="status"></p>
	</div>
	<script>
		const statusEl = document.getElementById('status');
		const clientToken = '{{PADDLE_TOKEN}}';
		const priceId = '{{PADDLE_PRICE_ID}}';

		if (clientToken) {
			Paddle.Environment.set('{{PADDLE_ENV}}');
			Paddle.Initialize({
				token: clientToken,
				eventCallback: async (event) => {
					if (event.name === 'checkout.completed') {
						statusEl.textContent = 'Payment complete. Updating credits...';
						await fetch('/api/credits/add', {
							method: 'POST',
							headers: { 'Content-Type': 'application/json' },
							body: JSON.stringify({ amount: 50 })
						});
						statusEl.textContent = 'All set! Head back to the dashboard for watermark-free exports.';
					}
				}
			});
		}

		document.getElementById('checkout-btn').addEventListener('click', () => {
			if (!clientToken || !priceId) {
				statusEl.textContent = 'Checkout is not configured. Set PADDLE_CLIENT_TOKEN and PADDLE_PRICE_ID.';
				return;
			}
			statusEl.textContent = 'Opening Paddle checkout...';
			Paddle.Checkout.open({
				items: [{ priceId: priceId, quantity: 1 }],
				customer: { email: '{{EMAIL}}' },
				customData: { user_id: '{{USER_ID}}' },
				settings: { displayMode: 'overlay', theme: 'light', successUrl: window.location.origin + '/dashboard' }
			});
		});
	</script>
</body>
</html>`
