package static

var (
	Part1 = `
    <!DOCTYPE html>
    <html>
    <head>
        <title>Voronoi diagram</title>
		<style>
			body {
				background-color: #1F1F1F;
				color: #d3d3d3;
				font-family: Consolas, monospace;
			}

			#container {
				display: flex;
				width: 100%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
				overflow-y: auto;
			}

			#right-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575;
				overflow-y: auto;
				overflow-x: auto;
				background-color: #1e1e1e;
			}

			#logs {
				white-space: pre-wrap;
				word-wrap: break-word;
				color: #d3d3d3;
				font-family: Consolas, monospace;
			}

			#chart-container {
				width: 100%;
				height: 400px;
			}

			input[type="number"],
			input[type="submit"] {
				background-color: #2b2b2b;
				color: #d3d3d3;
				border: 1px solid #444;
				padding: 5px;
				margin: 5px 0;
				border-radius: 4px;
			}

			label {
				color: #d3d3d3;
			}

			h1 {
				color: #d3d3d3;
			}

			input[type="submit"]:hover {
				background-color: #444;
				cursor: pointer;
			}

			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #444;
				border-radius: 10px;
			}

			::-webkit-scrollbar-track {
				background-color: #2b2b2b;
			}
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Voronoi diagram parameters</h1>
                <form id="diagram-form" method="POST">
                    <label for="width">Width (W):</label>
                    <input type="number" id="width" name="width" value="1000" min="100" max="5000"><br><br>
                    <label for="height">Height (H):</label>
                    <input type="number" id="height" name="height" value="1000" min="100" max="5000"><br><br>
                    <label for="sites">Number of sites (n):</label>
                    <input type="number" id="sites" name="sites" value="10" min="1" max="200"><br><br>
                    <label for="random">Random placement:</label>
                    <input type="checkbox" id="random" name="random" value="true"><br><br>
                    <label for="seed">Seed (optional):</label>
                    <input type="number" id="seed" name="seed"><br><br>
                    <label for="steps">Show merge steps:</label>
                    <input type="checkbox" id="steps" name="steps" value="true"><br><br>
                    <input type="submit" value="Run">
                </form>
    `

	Part2 = `
            </div>
            <div id="right-container">
                <h1>Logs</h1>
                <div id="logs">`

	Part3 = `
                </div>
            </div>
        </div>

        <script>
            document.getElementById('diagram-form').addEventListener('submit', function (e) {
                e.preventDefault();
                const formData = new FormData(this);
                const params = new URLSearchParams(formData).toString();

                fetch('/', {
                    method: 'POST',
                    body: params,
                    headers: {
                        'Content-Type': 'application/x-www-form-urlencoded'
                    }
                })
                .then(response => {
                    if (!response.ok) {
                        throw new Error('Failed to submit form');
                    }
                    return response.text();
                })
                .then(html => {
                    document.open();
                    document.write(html);
                    document.close();
                })
                .catch(error => {
                    console.error('Error:', error);
                });
            });
        </script>
    </body>
    </html>
    `
)
